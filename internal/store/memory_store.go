package store

import (
	"sort"
	"sync"
	"time"

	"bookhive/pkg/domain"
)

// MemoryStore is an in-memory Store for tests and local development. All
// methods are safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	books    map[string]domain.Book
	comments map[string]domain.Comment
	notes    map[string]domain.Note
	ratings  map[string]domain.Rating
	progress map[string]domain.ReadingProgress
	reviews  map[string]domain.Review
	wishlist map[string]domain.WishlistItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]domain.User),
		books:    make(map[string]domain.Book),
		comments: make(map[string]domain.Comment),
		notes:    make(map[string]domain.Note),
		ratings:  make(map[string]domain.Rating),
		progress: make(map[string]domain.ReadingProgress),
		reviews:  make(map[string]domain.Review),
		wishlist: make(map[string]domain.WishlistItem),
	}
}

func pairKey(userID, bookID string) string { return userID + "|" + bookID }

// users

func (s *MemoryStore) SaveUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, other := range s.users {
		if id != u.ID && other.Email == u.Email {
			return ErrDuplicate
		}
	}
	s.users[u.ID] = u
	return nil
}

func (s *MemoryStore) HasUserEmail(email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}

func (s *MemoryStore) GetUserByID(id string) (domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok, nil
}

// books

func (s *MemoryStore) SaveBook(b domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books[b.ID] = b
	return nil
}

func (s *MemoryStore) ListBooks() ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Book, 0, len(s.books))
	for _, b := range s.books {
		res = append(res, b)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

func (s *MemoryStore) GetBook(id string) (domain.Book, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[id]
	return b, ok, nil
}

// ratings

func (s *MemoryStore) UpsertRating(r domain.Rating) (domain.Rating, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.ratings {
		if existing.UserID == r.UserID && existing.BookID == r.BookID {
			existing.Score = r.Score
			s.ratings[id] = existing
			return existing, false, nil
		}
	}
	s.ratings[r.ID] = r
	return r, true, nil
}

func (s *MemoryStore) GetRating(userID, bookID string) (domain.Rating, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.ratings {
		if r.UserID == userID && r.BookID == bookID {
			return r, true, nil
		}
	}
	return domain.Rating{}, false, nil
}

func (s *MemoryStore) RatingStats(bookID string) (domain.RatingStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statsLocked(bookID), nil
}

func (s *MemoryStore) RatingStatsByBook() (map[string]domain.RatingStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make(map[string]domain.RatingStats)
	for _, r := range s.ratings {
		if _, ok := res[r.BookID]; !ok {
			res[r.BookID] = s.statsLocked(r.BookID)
		}
	}
	return res, nil
}

func (s *MemoryStore) statsLocked(bookID string) domain.RatingStats {
	sum, count := 0, 0
	for _, r := range s.ratings {
		if r.BookID == bookID {
			sum += r.Score
			count++
		}
	}
	if count == 0 {
		return domain.RatingStats{}
	}
	return domain.RatingStats{
		AverageRating: float64(sum) / float64(count),
		RatingCount:   count,
	}
}

// reading progress

func (s *MemoryStore) UpsertProgress(p domain.ReadingProgress) (domain.ReadingProgress, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey(p.UserID, p.BookID)
	existing, ok := s.progress[key]
	if ok {
		existing.CurrentPage = p.CurrentPage
		existing.LastRead = p.LastRead
		s.progress[key] = existing
		return existing, false, nil
	}
	s.progress[key] = p
	return p, true, nil
}

func (s *MemoryStore) GetProgress(userID, bookID string) (domain.ReadingProgress, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.progress[pairKey(userID, bookID)]
	return p, ok, nil
}

func (s *MemoryStore) ListProgressByUser(userID string) ([]domain.ProgressWithBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.ProgressWithBook, 0)
	for _, p := range s.progress {
		if p.UserID != userID {
			continue
		}
		book, ok := s.books[p.BookID]
		if !ok {
			continue
		}
		res = append(res, domain.ProgressWithBook{ReadingProgress: p, Book: book})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].LastRead.After(res[j].LastRead) })
	return res, nil
}

// comments

func (s *MemoryStore) CreateComment(c domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[c.ID] = c
	return nil
}

func (s *MemoryStore) GetComment(id string) (domain.Comment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return domain.Comment{}, false, nil
	}
	c.Username = s.users[c.UserID].Username
	return c, true, nil
}

func (s *MemoryStore) ListCommentsByBook(bookID string) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Comment, 0)
	for _, c := range s.comments {
		if c.BookID != bookID {
			continue
		}
		c.Username = s.users[c.UserID].Username
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (s *MemoryStore) UpdateComment(id, userID, text string) (domain.Comment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.UserID != userID {
		return domain.Comment{}, false, nil
	}
	c.Text = text
	c.UpdatedAt = time.Now().UTC()
	s.comments[id] = c
	c.Username = s.users[c.UserID].Username
	return c, true, nil
}

func (s *MemoryStore) DeleteComment(id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	delete(s.comments, id)
	return true, nil
}

// notes

func (s *MemoryStore) CreateNote(n domain.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[n.ID] = n
	return nil
}

func (s *MemoryStore) ListNotesByBook(bookID, userID string) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Note, 0)
	for _, n := range s.notes {
		if n.BookID == bookID && n.UserID == userID {
			res = append(res, n)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (s *MemoryStore) DeleteNote(id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	delete(s.notes, id)
	return true, nil
}

// reviews

func (s *MemoryStore) CreateReview(r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[r.ID] = r
	return nil
}

func (s *MemoryStore) GetReview(id string) (domain.Review, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviews[id]
	if !ok {
		return domain.Review{}, false, nil
	}
	return s.decorateReviewLocked(r), true, nil
}

func (s *MemoryStore) ListReviews() ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		res = append(res, s.decorateReviewLocked(r))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (s *MemoryStore) ListReviewsByBook(bookID string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if r.BookID == bookID {
			res = append(res, s.decorateReviewLocked(r))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (s *MemoryStore) decorateReviewLocked(r domain.Review) domain.Review {
	r.Username = s.users[r.UserID].Username
	if r.BookID != "" {
		r.BookTitle = s.books[r.BookID].Title
	}
	return r
}

func (s *MemoryStore) UpdateReview(id, userID string, update ReviewUpdate) (domain.Review, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok || r.UserID != userID {
		return domain.Review{}, false, nil
	}
	if update.Title != nil {
		r.Title = *update.Title
	}
	if update.Content != nil {
		r.Content = *update.Content
	}
	if update.Rating != nil {
		r.Rating = *update.Rating
	}
	if update.Recommend != nil {
		r.Recommend = *update.Recommend
	}
	r.UpdatedAt = time.Now().UTC()
	s.reviews[id] = r
	return s.decorateReviewLocked(r), true, nil
}

func (s *MemoryStore) DeleteReview(id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok || r.UserID != userID {
		return false, nil
	}
	delete(s.reviews, id)
	return true, nil
}

// wishlist

func (s *MemoryStore) ToggleWishlist(item domain.WishlistItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey(item.UserID, item.BookID)
	if _, ok := s.wishlist[key]; ok {
		delete(s.wishlist, key)
		return false, nil
	}
	s.wishlist[key] = item
	return true, nil
}

func (s *MemoryStore) ListWishlistByUser(userID string) ([]domain.WishlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.WishlistItem, 0)
	for _, item := range s.wishlist {
		if item.UserID != userID {
			continue
		}
		if book, ok := s.books[item.BookID]; ok {
			book.Pages = nil
			item.Book = &book
		}
		res = append(res, item)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

// profile counts

func (s *MemoryStore) CountWishlistByUser(userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.wishlist {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) CountNotesByUser(userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notes {
		if n.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) CountCommentsByUser(userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, c := range s.comments {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}
