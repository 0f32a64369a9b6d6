package store

import (
	"errors"

	"bookhive/pkg/domain"
)

// ErrDuplicate reports an insert that lost to a concurrent writer on a
// unique index.
var ErrDuplicate = errors.New("duplicate row")

// ReviewUpdate carries the mutable review fields for a partial update.
// Nil fields are left unchanged.
type ReviewUpdate struct {
	Title     *string
	Content   *string
	Rating    *int
	Recommend *bool
}

// Store defines persistence operations for users and all book-scoped
// resources. Every mutation of an owned row matches on (id, userID) so that
// ownership and non-existence are indistinguishable to callers.
type Store interface {
	// users
	SaveUser(domain.User) error
	HasUserEmail(email string) (bool, error)
	GetUserByEmail(email string) (domain.User, bool, error)
	GetUserByID(id string) (domain.User, bool, error)

	// books (reference data; written by seed/import only)
	SaveBook(domain.Book) error
	ListBooks() ([]domain.Book, error)
	GetBook(id string) (domain.Book, bool, error)

	// ratings
	UpsertRating(domain.Rating) (domain.Rating, bool, error)
	GetRating(userID, bookID string) (domain.Rating, bool, error)
	RatingStats(bookID string) (domain.RatingStats, error)
	RatingStatsByBook() (map[string]domain.RatingStats, error)

	// reading progress
	UpsertProgress(domain.ReadingProgress) (domain.ReadingProgress, bool, error)
	GetProgress(userID, bookID string) (domain.ReadingProgress, bool, error)
	ListProgressByUser(userID string) ([]domain.ProgressWithBook, error)

	// comments
	CreateComment(domain.Comment) error
	GetComment(id string) (domain.Comment, bool, error)
	ListCommentsByBook(bookID string) ([]domain.Comment, error)
	UpdateComment(id, userID, text string) (domain.Comment, bool, error)
	DeleteComment(id, userID string) (bool, error)

	// notes (private to their owner)
	CreateNote(domain.Note) error
	ListNotesByBook(bookID, userID string) ([]domain.Note, error)
	DeleteNote(id, userID string) (bool, error)

	// reviews
	CreateReview(domain.Review) error
	GetReview(id string) (domain.Review, bool, error)
	ListReviews() ([]domain.Review, error)
	ListReviewsByBook(bookID string) ([]domain.Review, error)
	UpdateReview(id, userID string, update ReviewUpdate) (domain.Review, bool, error)
	DeleteReview(id, userID string) (bool, error)

	// wishlist
	ToggleWishlist(domain.WishlistItem) (bool, error)
	ListWishlistByUser(userID string) ([]domain.WishlistItem, error)

	// profile counts
	CountWishlistByUser(userID string) (int, error)
	CountNotesByUser(userID string) (int, error)
	CountCommentsByUser(userID string) (int, error)
}

// SessionStore issues and validates session tokens.
type SessionStore interface {
	NewSession(userID string) (string, error)
	GetUserIDByToken(token string) (string, bool, error)
}
