package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookhive/pkg/domain"
)

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&CommentModel{},
		&NoteModel{},
		&RatingModel{},
		&ReadingProgressModel{},
		&ReviewModel{},
		&WishlistItemModel{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// users

// SaveUser creates or updates a user. The unique index on email is the final
// arbiter for concurrent signups; a losing insert reports ErrDuplicate.
func (s *GormStore) SaveUser(u domain.User) error {
	model := userToModel(u)
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "email", "password_hash", "bio", "avatar_url", "updated_at"}),
	}).Create(&model).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// HasUserEmail checks if email exists.
func (s *GormStore) HasUserEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUserByEmail looks up a user by email.
func (s *GormStore) GetUserByEmail(email string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// GetUserByID returns a user by ID.
func (s *GormStore) GetUserByID(id string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// books

// SaveBook stores or updates a catalog book.
func (s *GormStore) SaveBook(b domain.Book) error {
	model, err := bookToModel(b)
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "author", "description", "cover_image", "category", "pages", "source_key", "updated_at"}),
	}).Create(&model).Error
}

// ListBooks returns the full catalog ordered by created_at.
func (s *GormStore) ListBooks() ([]domain.Book, error) {
	var models []BookModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Book, 0, len(models))
	for _, m := range models {
		book, err := bookFromModel(m)
		if err != nil {
			return nil, err
		}
		res = append(res, book)
	}
	return res, nil
}

// GetBook retrieves a book by ID.
func (s *GormStore) GetBook(id string) (domain.Book, bool, error) {
	var model BookModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Book{}, false, nil
		}
		return domain.Book{}, false, err
	}
	book, err := bookFromModel(model)
	if err != nil {
		return domain.Book{}, false, err
	}
	return book, true, nil
}

// ratings

// upsertCreated reports whether this call's insert is the surviving row.
// When the conflict clause turns a racing insert into an update, the
// winner's id is the one stored and the loser must report an update.
func upsertCreated(inserted bool, insertID, storedID string) bool {
	return inserted && insertID == storedID
}

// UpsertRating writes one user's score for one book. The unique index on
// (user_id, book_id) guarantees a single row even when two submissions race.
func (s *GormStore) UpsertRating(r domain.Rating) (domain.Rating, bool, error) {
	inserted := false
	now := time.Now().UTC()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing RatingModel
		err := tx.Where("user_id = ? AND book_id = ?", r.UserID, r.BookID).First(&existing).Error
		if err == nil {
			return tx.Model(&RatingModel{}).
				Where("id = ?", existing.ID).
				Updates(map[string]any{"score": r.Score, "updated_at": now}).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		inserted = true
		model := RatingModel{
			ID:        r.ID,
			UserID:    r.UserID,
			BookID:    r.BookID,
			Score:     r.Score,
			CreatedAt: now,
			UpdatedAt: now,
		}
		// A concurrent insert for the same pair turns this into an update.
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).Create(&model).Error
	})
	if err != nil {
		return domain.Rating{}, false, err
	}
	stored, ok, err := s.GetRating(r.UserID, r.BookID)
	if err != nil {
		return domain.Rating{}, false, err
	}
	if !ok {
		return domain.Rating{}, false, fmt.Errorf("rating vanished after upsert")
	}
	return stored, upsertCreated(inserted, r.ID, stored.ID), nil
}

// GetRating returns one user's rating for a book.
func (s *GormStore) GetRating(userID, bookID string) (domain.Rating, bool, error) {
	var model RatingModel
	if err := s.db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Rating{}, false, nil
		}
		return domain.Rating{}, false, err
	}
	return ratingFromModel(model), true, nil
}

type ratingStatsRow struct {
	BookID        string
	AverageRating float64
	RatingCount   int
}

// RatingStats aggregates score average and count for one book.
func (s *GormStore) RatingStats(bookID string) (domain.RatingStats, error) {
	var row ratingStatsRow
	err := s.db.Model(&RatingModel{}).
		Select("COALESCE(AVG(score), 0) AS average_rating, COUNT(*) AS rating_count").
		Where("book_id = ?", bookID).
		Scan(&row).Error
	if err != nil {
		return domain.RatingStats{}, err
	}
	return domain.RatingStats{AverageRating: row.AverageRating, RatingCount: row.RatingCount}, nil
}

// RatingStatsByBook aggregates stats for the whole catalog in one query.
func (s *GormStore) RatingStatsByBook() (map[string]domain.RatingStats, error) {
	var rows []ratingStatsRow
	err := s.db.Model(&RatingModel{}).
		Select("book_id, COALESCE(AVG(score), 0) AS average_rating, COUNT(*) AS rating_count").
		Group("book_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[string]domain.RatingStats, len(rows))
	for _, row := range rows {
		res[row.BookID] = domain.RatingStats{AverageRating: row.AverageRating, RatingCount: row.RatingCount}
	}
	return res, nil
}

// reading progress

// UpsertProgress writes the caller's position in a book, last-write-wins.
func (s *GormStore) UpsertProgress(p domain.ReadingProgress) (domain.ReadingProgress, bool, error) {
	inserted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing ReadingProgressModel
		err := tx.Where("user_id = ? AND book_id = ?", p.UserID, p.BookID).First(&existing).Error
		if err == nil {
			return tx.Model(&ReadingProgressModel{}).
				Where("id = ?", existing.ID).
				Updates(map[string]any{"current_page": p.CurrentPage, "last_read": p.LastRead}).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		inserted = true
		model := progressToModel(p)
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"current_page", "last_read"}),
		}).Create(&model).Error
	})
	if err != nil {
		return domain.ReadingProgress{}, false, err
	}
	stored, ok, err := s.GetProgress(p.UserID, p.BookID)
	if err != nil {
		return domain.ReadingProgress{}, false, err
	}
	if !ok {
		return domain.ReadingProgress{}, false, fmt.Errorf("progress vanished after upsert")
	}
	return stored, upsertCreated(inserted, p.ID, stored.ID), nil
}

// GetProgress returns the caller's progress for a book.
func (s *GormStore) GetProgress(userID, bookID string) (domain.ReadingProgress, bool, error) {
	var model ReadingProgressModel
	if err := s.db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.ReadingProgress{}, false, nil
		}
		return domain.ReadingProgress{}, false, err
	}
	return progressFromModel(model), true, nil
}

// ListProgressByUser returns all progress rows with their book, most recent
// first. Rows whose book no longer exists are skipped.
func (s *GormStore) ListProgressByUser(userID string) ([]domain.ProgressWithBook, error) {
	var models []ReadingProgressModel
	if err := s.db.Where("user_id = ?", userID).Order("last_read DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.ProgressWithBook, 0, len(models))
	for _, m := range models {
		book, ok, err := s.GetBook(m.BookID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		res = append(res, domain.ProgressWithBook{ReadingProgress: progressFromModel(m), Book: book})
	}
	return res, nil
}

// comments

// CreateComment records a new comment.
func (s *GormStore) CreateComment(c domain.Comment) error {
	model := commentToModel(c)
	return s.db.Create(&model).Error
}

// GetComment retrieves a comment by ID with its author's username.
func (s *GormStore) GetComment(id string) (domain.Comment, bool, error) {
	var model CommentModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Comment{}, false, nil
		}
		return domain.Comment{}, false, err
	}
	comment := commentFromModel(model)
	if err := s.attachUsernames([]string{model.UserID}, func(names map[string]string) {
		comment.Username = names[model.UserID]
	}); err != nil {
		return domain.Comment{}, false, err
	}
	return comment, true, nil
}

// ListCommentsByBook returns a book's comments newest first, with usernames.
func (s *GormStore) ListCommentsByBook(bookID string) ([]domain.Comment, error) {
	var models []CommentModel
	if err := s.db.Where("book_id = ?", bookID).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Comment, 0, len(models))
	userIDs := make([]string, 0, len(models))
	for _, m := range models {
		res = append(res, commentFromModel(m))
		userIDs = append(userIDs, m.UserID)
	}
	if err := s.attachUsernames(userIDs, func(names map[string]string) {
		for i := range res {
			res[i].Username = names[res[i].UserID]
		}
	}); err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateComment overwrites the text of a comment owned by userID. The second
// return value is false when no row matches both id and owner.
func (s *GormStore) UpdateComment(id, userID, text string) (domain.Comment, bool, error) {
	tx := s.db.Model(&CommentModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"text": text, "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return domain.Comment{}, false, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.Comment{}, false, nil
	}
	return s.GetComment(id)
}

// DeleteComment removes a comment owned by userID.
func (s *GormStore) DeleteComment(id, userID string) (bool, error) {
	tx := s.db.Delete(&CommentModel{}, "id = ? AND user_id = ?", id, userID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// notes

// CreateNote records a private note.
func (s *GormStore) CreateNote(n domain.Note) error {
	model := noteToModel(n)
	return s.db.Create(&model).Error
}

// ListNotesByBook returns the owner's notes for a book, newest first. Other
// users' notes are never included.
func (s *GormStore) ListNotesByBook(bookID, userID string) ([]domain.Note, error) {
	var models []NoteModel
	if err := s.db.Where("book_id = ? AND user_id = ?", bookID, userID).
		Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Note, 0, len(models))
	for _, m := range models {
		res = append(res, noteFromModel(m))
	}
	return res, nil
}

// DeleteNote removes a note owned by userID.
func (s *GormStore) DeleteNote(id, userID string) (bool, error) {
	tx := s.db.Delete(&NoteModel{}, "id = ? AND user_id = ?", id, userID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// reviews

// CreateReview records a review; BookID may be empty for general reviews.
func (s *GormStore) CreateReview(r domain.Review) error {
	model := reviewToModel(r)
	return s.db.Create(&model).Error
}

// GetReview retrieves a review with username and book title attached.
func (s *GormStore) GetReview(id string) (domain.Review, bool, error) {
	var model ReviewModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Review{}, false, nil
		}
		return domain.Review{}, false, err
	}
	reviews, err := s.decorateReviews([]ReviewModel{model})
	if err != nil {
		return domain.Review{}, false, err
	}
	return reviews[0], true, nil
}

// ListReviews returns all reviews newest first.
func (s *GormStore) ListReviews() ([]domain.Review, error) {
	var models []ReviewModel
	if err := s.db.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return s.decorateReviews(models)
}

// ListReviewsByBook returns a book's reviews newest first.
func (s *GormStore) ListReviewsByBook(bookID string) ([]domain.Review, error) {
	var models []ReviewModel
	if err := s.db.Where("book_id = ?", bookID).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return s.decorateReviews(models)
}

// UpdateReview applies a partial update to a review owned by userID.
func (s *GormStore) UpdateReview(id, userID string, update ReviewUpdate) (domain.Review, bool, error) {
	changes := map[string]any{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Content != nil {
		changes["content"] = *update.Content
	}
	if update.Rating != nil {
		changes["rating"] = *update.Rating
	}
	if update.Recommend != nil {
		changes["recommend"] = *update.Recommend
	}
	tx := s.db.Model(&ReviewModel{}).Where("id = ? AND user_id = ?", id, userID).Updates(changes)
	if tx.Error != nil {
		return domain.Review{}, false, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.Review{}, false, nil
	}
	return s.GetReview(id)
}

// DeleteReview removes a review owned by userID.
func (s *GormStore) DeleteReview(id, userID string) (bool, error) {
	tx := s.db.Delete(&ReviewModel{}, "id = ? AND user_id = ?", id, userID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// wishlist

// ToggleWishlist flips wishlist membership for (item.UserID, item.BookID).
// Returns true when the book is saved after the call, false when removed.
func (s *GormStore) ToggleWishlist(item domain.WishlistItem) (bool, error) {
	saved := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&WishlistItemModel{}, "user_id = ? AND book_id = ?", item.UserID, item.BookID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		saved = true
		model := WishlistItemModel{
			ID:        item.ID,
			UserID:    item.UserID,
			BookID:    item.BookID,
			CreatedAt: time.Now().UTC(),
		}
		// A racing insert for the same pair leaves membership present either way.
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoNothing: true,
		}).Create(&model).Error
	})
	if err != nil {
		return false, err
	}
	return saved, nil
}

// ListWishlistByUser returns wishlist entries with their book summary.
func (s *GormStore) ListWishlistByUser(userID string) ([]domain.WishlistItem, error) {
	var models []WishlistItemModel
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.WishlistItem, 0, len(models))
	for _, m := range models {
		item := domain.WishlistItem{ID: m.ID, UserID: m.UserID, BookID: m.BookID, CreatedAt: m.CreatedAt}
		book, ok, err := s.GetBook(m.BookID)
		if err != nil {
			return nil, err
		}
		if ok {
			book.Pages = nil // summary only
			item.Book = &book
		}
		res = append(res, item)
	}
	return res, nil
}

// profile counts

func (s *GormStore) CountWishlistByUser(userID string) (int, error) {
	return s.countByUser(&WishlistItemModel{}, userID)
}

func (s *GormStore) CountNotesByUser(userID string) (int, error) {
	return s.countByUser(&NoteModel{}, userID)
}

func (s *GormStore) CountCommentsByUser(userID string) (int, error) {
	return s.countByUser(&CommentModel{}, userID)
}

func (s *GormStore) countByUser(model any, userID string) (int, error) {
	var count int64
	if err := s.db.Model(model).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *GormStore) attachUsernames(userIDs []string, apply func(map[string]string)) error {
	if len(userIDs) == 0 {
		apply(map[string]string{})
		return nil
	}
	var users []UserModel
	if err := s.db.Select("id", "username").Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	apply(names)
	return nil
}

func (s *GormStore) decorateReviews(models []ReviewModel) ([]domain.Review, error) {
	res := make([]domain.Review, 0, len(models))
	userIDs := make([]string, 0, len(models))
	bookIDs := make([]string, 0, len(models))
	for _, m := range models {
		res = append(res, reviewFromModel(m))
		userIDs = append(userIDs, m.UserID)
		if m.BookID != "" {
			bookIDs = append(bookIDs, m.BookID)
		}
	}
	if err := s.attachUsernames(userIDs, func(names map[string]string) {
		for i := range res {
			res[i].Username = names[res[i].UserID]
		}
	}); err != nil {
		return nil, err
	}
	if len(bookIDs) > 0 {
		var books []BookModel
		if err := s.db.Select("id", "title").Where("id IN ?", bookIDs).Find(&books).Error; err != nil {
			return nil, err
		}
		titles := make(map[string]string, len(books))
		for _, b := range books {
			titles[b.ID] = b.Title
		}
		for i := range res {
			res[i].BookTitle = titles[res[i].BookID]
		}
	}
	return res, nil
}

// converters

func userToModel(u domain.User) UserModel {
	return UserModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Bio:          u.Bio,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userFromModel(m UserModel) domain.User {
	return domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Bio:          m.Bio,
		AvatarURL:    m.AvatarURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func bookToModel(b domain.Book) (BookModel, error) {
	model := BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		Category:    b.Category,
		SourceKey:   b.SourceKey,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if len(b.Pages) > 0 {
		raw, err := json.Marshal(b.Pages)
		if err != nil {
			return BookModel{}, fmt.Errorf("marshal pages: %w", err)
		}
		model.Pages = datatypes.JSON(raw)
	}
	return model, nil
}

func bookFromModel(m BookModel) (domain.Book, error) {
	book := domain.Book{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		Description: m.Description,
		CoverImage:  m.CoverImage,
		Category:    m.Category,
		SourceKey:   m.SourceKey,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if len(m.Pages) > 0 {
		if err := json.Unmarshal(m.Pages, &book.Pages); err != nil {
			return domain.Book{}, fmt.Errorf("unmarshal pages: %w", err)
		}
	}
	return book, nil
}

func commentToModel(c domain.Comment) CommentModel {
	return CommentModel{
		ID:        c.ID,
		Text:      c.Text,
		UserID:    c.UserID,
		BookID:    c.BookID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func commentFromModel(m CommentModel) domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		Text:      m.Text,
		UserID:    m.UserID,
		BookID:    m.BookID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func noteToModel(n domain.Note) NoteModel {
	return NoteModel{
		ID:        n.ID,
		Text:      n.Text,
		UserID:    n.UserID,
		BookID:    n.BookID,
		Page:      n.Page,
		CreatedAt: n.CreatedAt,
	}
}

func noteFromModel(m NoteModel) domain.Note {
	return domain.Note{
		ID:        m.ID,
		Text:      m.Text,
		UserID:    m.UserID,
		BookID:    m.BookID,
		Page:      m.Page,
		CreatedAt: m.CreatedAt,
	}
}

func ratingFromModel(m RatingModel) domain.Rating {
	return domain.Rating{ID: m.ID, UserID: m.UserID, BookID: m.BookID, Score: m.Score}
}

func progressToModel(p domain.ReadingProgress) ReadingProgressModel {
	return ReadingProgressModel{
		ID:          p.ID,
		UserID:      p.UserID,
		BookID:      p.BookID,
		CurrentPage: p.CurrentPage,
		LastRead:    p.LastRead,
	}
}

func progressFromModel(m ReadingProgressModel) domain.ReadingProgress {
	return domain.ReadingProgress{
		ID:          m.ID,
		UserID:      m.UserID,
		BookID:      m.BookID,
		CurrentPage: m.CurrentPage,
		LastRead:    m.LastRead,
	}
}

func reviewToModel(r domain.Review) ReviewModel {
	return ReviewModel{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Rating:    r.Rating,
		Recommend: r.Recommend,
		UserID:    r.UserID,
		BookID:    r.BookID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func reviewFromModel(m ReviewModel) domain.Review {
	return domain.Review{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Rating:    m.Rating,
		Recommend: m.Recommend,
		UserID:    m.UserID,
		BookID:    m.BookID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
