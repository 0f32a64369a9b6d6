package store

import (
	"time"

	"gorm.io/datatypes"
)

// GORM models used for persistence. Ratings, reading progress and wishlist
// rows carry a composite unique index on (user_id, book_id); that index is
// the final arbiter for concurrent upserts and toggles.
type UserModel struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Bio          string `gorm:"type:text"`
	AvatarURL    string
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type BookModel struct {
	ID          string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Author      string `gorm:"not null"`
	Description string `gorm:"type:text"`
	CoverImage  string
	Category    string
	Pages       datatypes.JSON
	SourceKey   string
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

type CommentModel struct {
	ID        string    `gorm:"primaryKey"`
	Text      string    `gorm:"type:text;not null"`
	UserID    string    `gorm:"not null;index"`
	BookID    string    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type NoteModel struct {
	ID        string    `gorm:"primaryKey"`
	Text      string    `gorm:"type:text;not null"`
	UserID    string    `gorm:"not null;index"`
	BookID    string    `gorm:"not null;index"`
	Page      int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null;index"`
}

type RatingModel struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_ratings_user_book"`
	BookID    string    `gorm:"not null;uniqueIndex:idx_ratings_user_book"`
	Score     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ReadingProgressModel struct {
	ID          string    `gorm:"primaryKey"`
	UserID      string    `gorm:"not null;uniqueIndex:idx_progress_user_book"`
	BookID      string    `gorm:"not null;uniqueIndex:idx_progress_user_book"`
	CurrentPage int       `gorm:"not null;default:0"`
	LastRead    time.Time `gorm:"not null;index"`
}

type ReviewModel struct {
	ID        string `gorm:"primaryKey"`
	Title     string
	Content   string `gorm:"type:text;not null"`
	Rating    int
	Recommend bool      `gorm:"not null;default:false"`
	UserID    string    `gorm:"not null;index"`
	BookID    string    `gorm:"index"` // empty for general reviews
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type WishlistItemModel struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_wishlist_user_book"`
	BookID    string    `gorm:"not null;uniqueIndex:idx_wishlist_user_book"`
	CreatedAt time.Time `gorm:"not null"`
}
