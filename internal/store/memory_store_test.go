package store

import (
	"testing"
	"time"

	"bookhive/pkg/domain"
)

func TestMemoryStoreRatingUpsert(t *testing.T) {
	s := NewMemoryStore()

	first, created, err := s.UpsertRating(domain.Rating{ID: "r1", UserID: "u1", BookID: "b1", Score: 4})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !created {
		t.Fatalf("first upsert should create")
	}
	if first.Score != 4 {
		t.Fatalf("score = %d, want 4", first.Score)
	}

	second, created, err := s.UpsertRating(domain.Rating{ID: "r2", UserID: "u1", BookID: "b1", Score: 2})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if created {
		t.Fatalf("second upsert should update, not create")
	}
	if second.ID != "r1" {
		t.Fatalf("update must keep the original row, got id %s", second.ID)
	}
	if second.Score != 2 {
		t.Fatalf("score = %d, want 2", second.Score)
	}

	stats, err := s.RatingStats("b1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.RatingCount != 1 || stats.AverageRating != 2 {
		t.Fatalf("stats = %+v, want count 1 avg 2", stats)
	}
}

func TestMemoryStoreRatingStatsEmpty(t *testing.T) {
	s := NewMemoryStore()
	stats, err := s.RatingStats("missing")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.AverageRating != 0 || stats.RatingCount != 0 {
		t.Fatalf("unrated book must report zero stats, got %+v", stats)
	}
}

func TestMemoryStoreWishlistToggle(t *testing.T) {
	s := NewMemoryStore()
	item := domain.WishlistItem{ID: "w1", UserID: "u1", BookID: "b1"}

	saved, err := s.ToggleWishlist(item)
	if err != nil || !saved {
		t.Fatalf("first toggle = (%v, %v), want saved", saved, err)
	}
	saved, err = s.ToggleWishlist(item)
	if err != nil || saved {
		t.Fatalf("second toggle = (%v, %v), want removed", saved, err)
	}
	count, err := s.CountWishlistByUser("u1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("wishlist count = %d, want 0", count)
	}
}

func TestMemoryStoreCommentOwnership(t *testing.T) {
	s := NewMemoryStore()
	if err := s.SaveUser(domain.User{ID: "u1", Username: "ann"}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if err := s.CreateComment(domain.Comment{ID: "c1", UserID: "u1", BookID: "b1", Text: "great"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, ok, _ := s.UpdateComment("c1", "u2", "hacked"); ok {
		t.Fatalf("non-owner must not update")
	}
	updated, ok, err := s.UpdateComment("c1", "u1", "edited")
	if err != nil || !ok {
		t.Fatalf("owner update = (%v, %v)", ok, err)
	}
	if updated.Text != "edited" || updated.Username != "ann" {
		t.Fatalf("updated = %+v", updated)
	}

	if ok, _ := s.DeleteComment("c1", "u2"); ok {
		t.Fatalf("non-owner must not delete")
	}
	if ok, _ := s.DeleteComment("c1", "u1"); !ok {
		t.Fatalf("owner delete failed")
	}
}

func TestMemoryStoreNotesPrivate(t *testing.T) {
	s := NewMemoryStore()
	if err := s.CreateNote(domain.Note{ID: "n1", UserID: "u1", BookID: "b1", Text: "mine"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.CreateNote(domain.Note{ID: "n2", UserID: "u2", BookID: "b1", Text: "theirs"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	notes, err := s.ListNotesByBook("b1", "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != "n1" {
		t.Fatalf("notes = %+v, want only n1", notes)
	}
}

func TestMemoryStoreProgressList(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now().UTC()
	if err := s.SaveBook(domain.Book{ID: "b1", Title: "One"}); err != nil {
		t.Fatalf("save book: %v", err)
	}
	if _, _, err := s.UpsertProgress(domain.ReadingProgress{ID: "p1", UserID: "u1", BookID: "b1", CurrentPage: 3, LastRead: now}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// Progress pointing at a deleted book is dropped from the listing.
	if _, _, err := s.UpsertProgress(domain.ReadingProgress{ID: "p2", UserID: "u1", BookID: "gone", CurrentPage: 9, LastRead: now.Add(time.Hour)}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	list, err := s.ListProgressByUser("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Book.Title != "One" || list[0].CurrentPage != 3 {
		t.Fatalf("list = %+v", list)
	}
}

func TestMemoryStoreReviewPartialUpdate(t *testing.T) {
	s := NewMemoryStore()
	if err := s.SaveUser(domain.User{ID: "u1", Username: "ann"}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if err := s.CreateReview(domain.Review{ID: "v1", UserID: "u1", Title: "T", Content: "C", Rating: 3}); err != nil {
		t.Fatalf("create: %v", err)
	}

	newRating := 5
	updated, ok, err := s.UpdateReview("v1", "u1", ReviewUpdate{Rating: &newRating})
	if err != nil || !ok {
		t.Fatalf("update = (%v, %v)", ok, err)
	}
	if updated.Rating != 5 || updated.Title != "T" || updated.Content != "C" {
		t.Fatalf("partial update must leave other fields alone: %+v", updated)
	}
}
