package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Book is catalog reference data. It is created by seed/import only and
// never mutated through the API.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
	CoverImage  string    `json:"coverImage,omitempty"`
	Category    string    `json:"category,omitempty"`
	Pages       []string  `json:"content,omitempty"`
	SourceKey   string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RatingStats aggregates all ratings of one book.
// AverageRating is 0 (not null) when no ratings exist.
type RatingStats struct {
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}

// BookWithStats is the catalog read model.
type BookWithStats struct {
	Book
	RatingStats
}

type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"userId"`
	BookID    string    `json:"bookId"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Note is strictly private to its owner.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"userId"`
	BookID    string    `json:"bookId"`
	Page      int       `json:"page,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Rating holds one user's score for one book. At most one row exists per
// (UserID, BookID) pair.
type Rating struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	BookID string `json:"bookId"`
	Score  int    `json:"score"`
}

// ReadingProgress tracks the last page a user reached in a book. At most one
// row exists per (UserID, BookID) pair.
type ReadingProgress struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	BookID      string    `json:"bookId"`
	CurrentPage int       `json:"currentPage"`
	LastRead    time.Time `json:"lastRead"`
}

// ProgressWithBook joins a progress row with its book for the reading list.
type ProgressWithBook struct {
	ReadingProgress
	Book Book `json:"book"`
}

// Review may be book-scoped or general; BookID is empty for general reviews.
type Review struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating,omitempty"`
	Recommend bool      `json:"recommend"`
	UserID    string    `json:"userId"`
	BookID    string    `json:"bookId,omitempty"`
	Username  string    `json:"username,omitempty"`
	BookTitle string    `json:"bookTitle,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WishlistItem marks binary membership of a book in a user's wishlist.
type WishlistItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	BookID    string    `json:"bookId"`
	Book      *Book     `json:"book,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileStats are the per-user counts shown on the profile page.
type ProfileStats struct {
	WishlistCount int `json:"wishlistCount"`
	NotesCount    int `json:"notesCount"`
	CommentsCount int `json:"commentsCount"`
}
