package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"bookhive/internal/store"
	"bookhive/internal/util"
	"bookhive/pkg/auth"
	"bookhive/pkg/domain"
)

const downloadURLExpiry = 15 * time.Minute

// FileArchive serves presigned download links for archived book source files.
type FileArchive interface {
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// App is the application core. It owns business rules (validation, ownership,
// rating bounds) and delegates persistence to the store.
type App struct {
	store    store.Store
	sessions store.SessionStore
	files    FileArchive // nil when the source-file archive is disabled
}

// New assembles the application core. files may be nil.
func New(st store.Store, sessions store.SessionStore, files FileArchive) *App {
	return &App{store: st, sessions: sessions, files: files}
}

// auth

// SignUp registers a new user. The store's unique index on email backstops
// the pre-check under concurrent signups.
func (a *App) SignUp(username, email, password string) (domain.User, error) {
	taken, err := a.store.HasUserEmail(email)
	if err != nil {
		return domain.User{}, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return domain.User{}, ErrEmailTaken
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user := domain.User{
		ID:           util.NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.store.SaveUser(user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// SignIn verifies credentials and issues a session token.
func (a *App) SignIn(email, password string) (domain.User, string, error) {
	user, ok, err := a.store.GetUserByEmail(email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("get user: %w", err)
	}
	if !ok {
		return domain.User{}, "", ErrUserNotFound
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return domain.User{}, "", ErrInvalidCredentials
	}
	token, err := a.sessions.NewSession(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("new session: %w", err)
	}
	return user, token, nil
}

// UserFromToken resolves a bearer token to its user. ok is false for invalid
// or expired tokens and for tokens whose user no longer exists.
func (a *App) UserFromToken(token string) (domain.User, bool, error) {
	userID, ok, err := a.sessions.GetUserIDByToken(token)
	if err != nil || !ok {
		return domain.User{}, false, err
	}
	return a.store.GetUserByID(userID)
}

// catalog

// ListBooks returns the catalog with rating stats, content omitted.
func (a *App) ListBooks() ([]domain.BookWithStats, error) {
	books, err := a.store.ListBooks()
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	stats, err := a.store.RatingStatsByBook()
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}
	res := make([]domain.BookWithStats, 0, len(books))
	for _, b := range books {
		b.Pages = nil // listing is summaries only
		res = append(res, domain.BookWithStats{Book: b, RatingStats: stats[b.ID]})
	}
	return res, nil
}

// GetBook returns one book with its content and rating stats.
func (a *App) GetBook(id string) (domain.BookWithStats, error) {
	book, ok, err := a.store.GetBook(id)
	if err != nil {
		return domain.BookWithStats{}, fmt.Errorf("get book: %w", err)
	}
	if !ok {
		return domain.BookWithStats{}, ErrNotFound
	}
	stats, err := a.store.RatingStats(id)
	if err != nil {
		return domain.BookWithStats{}, fmt.Errorf("rating stats: %w", err)
	}
	return domain.BookWithStats{Book: book, RatingStats: stats}, nil
}

// DownloadURL returns a presigned link to the book's archived source file.
// Books without an archived file report ErrNotFound, as does a disabled
// archive.
func (a *App) DownloadURL(ctx context.Context, bookID string) (string, error) {
	book, ok, err := a.store.GetBook(bookID)
	if err != nil {
		return "", fmt.Errorf("get book: %w", err)
	}
	if !ok || book.SourceKey == "" || a.files == nil {
		return "", ErrNotFound
	}
	url, err := a.files.PresignGet(ctx, book.SourceKey, downloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

// ratings

// SubmitRating validates and upserts one user's score for a book. The bool
// result is true when a new rating row was created.
func (a *App) SubmitRating(userID, bookID string, score int) (domain.Rating, bool, error) {
	if score < 1 || score > 5 {
		return domain.Rating{}, false, ErrScoreOutOfRange
	}
	if err := a.requireBook(bookID); err != nil {
		return domain.Rating{}, false, err
	}
	rating := domain.Rating{ID: util.NewID(), UserID: userID, BookID: bookID, Score: score}
	stored, created, err := a.store.UpsertRating(rating)
	if err != nil {
		return domain.Rating{}, false, fmt.Errorf("upsert rating: %w", err)
	}
	return stored, created, nil
}

// BookRatingStats aggregates all ratings of a book; zero stats when unrated.
func (a *App) BookRatingStats(bookID string) (domain.RatingStats, error) {
	stats, err := a.store.RatingStats(bookID)
	if err != nil {
		return domain.RatingStats{}, fmt.Errorf("rating stats: %w", err)
	}
	return stats, nil
}

// UserRating returns the caller's rating for a book, score 0 when absent.
func (a *App) UserRating(userID, bookID string) (domain.Rating, error) {
	rating, ok, err := a.store.GetRating(userID, bookID)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("get rating: %w", err)
	}
	if !ok {
		return domain.Rating{UserID: userID, BookID: bookID, Score: 0}, nil
	}
	return rating, nil
}

// reading progress

// SaveProgress upserts the caller's position in a book, stamping lastRead.
func (a *App) SaveProgress(userID, bookID string, currentPage int) (domain.ReadingProgress, bool, error) {
	if currentPage < 0 {
		return domain.ReadingProgress{}, false, ErrInvalidPage
	}
	if err := a.requireBook(bookID); err != nil {
		return domain.ReadingProgress{}, false, err
	}
	progress := domain.ReadingProgress{
		ID:          util.NewID(),
		UserID:      userID,
		BookID:      bookID,
		CurrentPage: currentPage,
		LastRead:    time.Now().UTC(),
	}
	stored, created, err := a.store.UpsertProgress(progress)
	if err != nil {
		return domain.ReadingProgress{}, false, fmt.Errorf("upsert progress: %w", err)
	}
	return stored, created, nil
}

// Progress returns the caller's position in a book, page 0 when never opened.
func (a *App) Progress(userID, bookID string) (domain.ReadingProgress, error) {
	progress, ok, err := a.store.GetProgress(userID, bookID)
	if err != nil {
		return domain.ReadingProgress{}, fmt.Errorf("get progress: %w", err)
	}
	if !ok {
		return domain.ReadingProgress{UserID: userID, BookID: bookID, CurrentPage: 0}, nil
	}
	return progress, nil
}

// ReadingList returns everything the caller has started, most recent first.
func (a *App) ReadingList(userID string) ([]domain.ProgressWithBook, error) {
	list, err := a.store.ListProgressByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return list, nil
}

// comments

// AddComment attaches a public comment to a book.
func (a *App) AddComment(userID, bookID, text string) (domain.Comment, error) {
	if err := a.requireBook(bookID); err != nil {
		return domain.Comment{}, err
	}
	now := time.Now().UTC()
	comment := domain.Comment{
		ID:        util.NewID(),
		Text:      text,
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.store.CreateComment(comment); err != nil {
		return domain.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	stored, ok, err := a.store.GetComment(comment.ID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("get comment: %w", err)
	}
	if !ok {
		return comment, nil
	}
	return stored, nil
}

// CommentsForBook lists a book's comments, newest first.
func (a *App) CommentsForBook(bookID string) ([]domain.Comment, error) {
	comments, err := a.store.ListCommentsByBook(bookID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// EditComment rewrites a comment the caller owns.
func (a *App) EditComment(id, userID, text string) (domain.Comment, error) {
	comment, ok, err := a.store.UpdateComment(id, userID, text)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("update comment: %w", err)
	}
	if !ok {
		return domain.Comment{}, ErrNotFound
	}
	return comment, nil
}

// RemoveComment deletes a comment the caller owns.
func (a *App) RemoveComment(id, userID string) error {
	ok, err := a.store.DeleteComment(id, userID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// notes

// AddNote records a private note on a book.
func (a *App) AddNote(userID, bookID, text string, page int) (domain.Note, error) {
	if err := a.requireBook(bookID); err != nil {
		return domain.Note{}, err
	}
	note := domain.Note{
		ID:        util.NewID(),
		Text:      text,
		UserID:    userID,
		BookID:    bookID,
		Page:      page,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.store.CreateNote(note); err != nil {
		return domain.Note{}, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// NotesForBook lists only the caller's own notes for a book.
func (a *App) NotesForBook(bookID, userID string) ([]domain.Note, error) {
	notes, err := a.store.ListNotesByBook(bookID, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// RemoveNote deletes a note the caller owns.
func (a *App) RemoveNote(id, userID string) error {
	ok, err := a.store.DeleteNote(id, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// reviews

// ReviewInput carries the fields of a new review. BookID may be empty for a
// general review; Rating may be 0 for none.
type ReviewInput struct {
	Title     string
	Content   string
	Rating    int
	Recommend bool
	BookID    string
}

// AddReview records a review, optionally tied to a book.
func (a *App) AddReview(userID string, input ReviewInput) (domain.Review, error) {
	if input.Rating != 0 && (input.Rating < 1 || input.Rating > 5) {
		return domain.Review{}, ErrScoreOutOfRange
	}
	if input.BookID != "" {
		if err := a.requireBook(input.BookID); err != nil {
			return domain.Review{}, err
		}
	}
	now := time.Now().UTC()
	review := domain.Review{
		ID:        util.NewID(),
		Title:     input.Title,
		Content:   input.Content,
		Rating:    input.Rating,
		Recommend: input.Recommend,
		UserID:    userID,
		BookID:    input.BookID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.store.CreateReview(review); err != nil {
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}
	stored, ok, err := a.store.GetReview(review.ID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("get review: %w", err)
	}
	if !ok {
		return review, nil
	}
	return stored, nil
}

// ListReviews returns every review, newest first.
func (a *App) ListReviews() ([]domain.Review, error) {
	reviews, err := a.store.ListReviews()
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// ReviewsForBook lists reviews tied to one book, newest first.
func (a *App) ReviewsForBook(bookID string) ([]domain.Review, error) {
	reviews, err := a.store.ListReviewsByBook(bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// EditReview applies a partial update to a review the caller owns.
func (a *App) EditReview(id, userID string, update store.ReviewUpdate) (domain.Review, error) {
	if update.Rating != nil && *update.Rating != 0 && (*update.Rating < 1 || *update.Rating > 5) {
		return domain.Review{}, ErrScoreOutOfRange
	}
	review, ok, err := a.store.UpdateReview(id, userID, update)
	if err != nil {
		return domain.Review{}, fmt.Errorf("update review: %w", err)
	}
	if !ok {
		return domain.Review{}, ErrNotFound
	}
	return review, nil
}

// RemoveReview deletes a review the caller owns.
func (a *App) RemoveReview(id, userID string) error {
	ok, err := a.store.DeleteReview(id, userID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// wishlist

// ToggleWishlist flips wishlist membership; true means the book is now saved.
func (a *App) ToggleWishlist(userID, bookID string) (bool, error) {
	if err := a.requireBook(bookID); err != nil {
		return false, err
	}
	item := domain.WishlistItem{
		ID:        util.NewID(),
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: time.Now().UTC(),
	}
	saved, err := a.store.ToggleWishlist(item)
	if err != nil {
		return false, fmt.Errorf("toggle wishlist: %w", err)
	}
	return saved, nil
}

// Wishlist returns the caller's saved books.
func (a *App) Wishlist(userID string) ([]domain.WishlistItem, error) {
	items, err := a.store.ListWishlistByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return items, nil
}

// profile

// GetProfile returns the user plus activity counts. The three counts are
// independent reads and run concurrently.
func (a *App) GetProfile(ctx context.Context, userID string) (domain.User, domain.ProfileStats, error) {
	user, ok, err := a.store.GetUserByID(userID)
	if err != nil {
		return domain.User{}, domain.ProfileStats{}, fmt.Errorf("get user: %w", err)
	}
	if !ok {
		return domain.User{}, domain.ProfileStats{}, ErrNotFound
	}

	var stats domain.ProfileStats
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := a.store.CountWishlistByUser(userID)
		stats.WishlistCount = n
		return err
	})
	g.Go(func() error {
		n, err := a.store.CountNotesByUser(userID)
		stats.NotesCount = n
		return err
	})
	g.Go(func() error {
		n, err := a.store.CountCommentsByUser(userID)
		stats.CommentsCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.User{}, domain.ProfileStats{}, fmt.Errorf("profile counts: %w", err)
	}
	return user, stats, nil
}

// ProfileUpdate carries the mutable profile fields; nil fields are unchanged.
type ProfileUpdate struct {
	Username  *string
	Bio       *string
	AvatarURL *string
}

// UpdateProfile applies a partial update to the caller's own profile.
func (a *App) UpdateProfile(userID string, update ProfileUpdate) (domain.User, error) {
	user, ok, err := a.store.GetUserByID(userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	if !ok {
		return domain.User{}, ErrNotFound
	}
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	user.UpdatedAt = time.Now().UTC()
	if err := a.store.SaveUser(user); err != nil {
		return domain.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func (a *App) requireBook(bookID string) error {
	_, ok, err := a.store.GetBook(bookID)
	if err != nil {
		return fmt.Errorf("get book: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
