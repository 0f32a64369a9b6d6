package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookhive/internal/store"
	"bookhive/pkg/domain"
)

func newTestApp(t *testing.T) (*App, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	sessions := store.NewJWTSessionStore("test-secret", time.Hour)
	return New(st, sessions, nil), st
}

func seedBook(t *testing.T, st *store.MemoryStore, id string) {
	t.Helper()
	if err := st.SaveBook(domain.Book{ID: id, Title: "Book " + id, CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("seed book: %v", err)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	a, _ := newTestApp(t)
	if _, err := a.SignUp("ann", "ann@example.com", "hunter22"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := a.SignUp("other", "ann@example.com", "different")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestSignInFlows(t *testing.T) {
	a, _ := newTestApp(t)
	if _, err := a.SignUp("ann", "ann@example.com", "hunter22"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, _, err := a.SignIn("nobody@example.com", "hunter22"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown email err = %v, want ErrUserNotFound", err)
	}
	if _, _, err := a.SignIn("ann@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}

	user, token, err := a.SignIn("ann@example.com", "hunter22")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if token == "" {
		t.Fatalf("token missing")
	}
	resolved, ok, err := a.UserFromToken(token)
	if err != nil || !ok {
		t.Fatalf("resolve token = (%v, %v)", ok, err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("resolved %s, want %s", resolved.ID, user.ID)
	}
}

func TestSubmitRatingBounds(t *testing.T) {
	a, st := newTestApp(t)
	seedBook(t, st, "b1")
	user, _ := a.SignUp("ann", "ann@example.com", "hunter22")

	for _, score := range []int{0, 6, -1} {
		if _, _, err := a.SubmitRating(user.ID, "b1", score); !errors.Is(err, ErrScoreOutOfRange) {
			t.Fatalf("score %d err = %v, want ErrScoreOutOfRange", score, err)
		}
	}
	if _, _, err := a.SubmitRating(user.ID, "missing", 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown book err = %v, want ErrNotFound", err)
	}

	_, created, err := a.SubmitRating(user.ID, "b1", 5)
	if err != nil || !created {
		t.Fatalf("first rating = (%v, %v), want created", created, err)
	}
	rating, created, err := a.SubmitRating(user.ID, "b1", 2)
	if err != nil || created {
		t.Fatalf("second rating = (%v, %v), want update", created, err)
	}
	if rating.Score != 2 {
		t.Fatalf("score = %d, want 2", rating.Score)
	}
}

func TestUserRatingDefaultsToZero(t *testing.T) {
	a, st := newTestApp(t)
	seedBook(t, st, "b1")
	rating, err := a.UserRating("u1", "b1")
	if err != nil {
		t.Fatalf("user rating: %v", err)
	}
	if rating.Score != 0 {
		t.Fatalf("score = %d, want 0", rating.Score)
	}
}

func TestSaveProgressRejectsNegativePage(t *testing.T) {
	a, st := newTestApp(t)
	seedBook(t, st, "b1")
	if _, _, err := a.SaveProgress("u1", "b1", -1); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("err = %v, want ErrInvalidPage", err)
	}
	progress, err := a.Progress("u1", "b1")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress.CurrentPage != 0 {
		t.Fatalf("page = %d, want 0", progress.CurrentPage)
	}
}

func TestCommentOwnershipCollapsesTo404(t *testing.T) {
	a, st := newTestApp(t)
	seedBook(t, st, "b1")
	owner, _ := a.SignUp("ann", "ann@example.com", "hunter22")
	stranger, _ := a.SignUp("bob", "bob@example.com", "hunter22")

	comment, err := a.AddComment(owner.ID, "b1", "nice book")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	if _, err := a.EditComment(comment.ID, stranger.ID, "defaced"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stranger edit err = %v, want ErrNotFound", err)
	}
	if err := a.RemoveComment(comment.ID, stranger.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stranger delete err = %v, want ErrNotFound", err)
	}
	if err := a.RemoveComment("no-such-id", owner.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id err = %v, want ErrNotFound", err)
	}
	if err := a.RemoveComment(comment.ID, owner.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestWishlistToggle(t *testing.T) {
	a, st := newTestApp(t)
	seedBook(t, st, "b1")
	user, _ := a.SignUp("ann", "ann@example.com", "hunter22")

	saved, err := a.ToggleWishlist(user.ID, "b1")
	if err != nil || !saved {
		t.Fatalf("first toggle = (%v, %v), want saved", saved, err)
	}
	saved, err = a.ToggleWishlist(user.ID, "b1")
	if err != nil || saved {
		t.Fatalf("second toggle = (%v, %v), want removed", saved, err)
	}
	if _, err := a.ToggleWishlist(user.ID, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown book err = %v, want ErrNotFound", err)
	}
}

func TestGetProfileCounts(t *testing.T) {
	a, st := newTestApp(t)
	seedBook(t, st, "b1")
	user, _ := a.SignUp("ann", "ann@example.com", "hunter22")

	if _, err := a.AddComment(user.ID, "b1", "one"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if _, err := a.AddNote(user.ID, "b1", "mine", 3); err != nil {
		t.Fatalf("note: %v", err)
	}
	if _, err := a.ToggleWishlist(user.ID, "b1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	got, stats, err := a.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if got.Email != "ann@example.com" {
		t.Fatalf("user = %+v", got)
	}
	want := domain.ProfileStats{WishlistCount: 1, NotesCount: 1, CommentsCount: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	a, _ := newTestApp(t)
	user, _ := a.SignUp("ann", "ann@example.com", "hunter22")

	bio := "reader of everything"
	updated, err := a.UpdateProfile(user.ID, ProfileUpdate{Bio: &bio})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Bio != bio || updated.Username != "ann" {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestGeneralReviewWithoutBook(t *testing.T) {
	a, _ := newTestApp(t)
	user, _ := a.SignUp("ann", "ann@example.com", "hunter22")

	review, err := a.AddReview(user.ID, ReviewInput{Content: "the platform is great", Recommend: true})
	if err != nil {
		t.Fatalf("add review: %v", err)
	}
	if review.BookID != "" {
		t.Fatalf("general review must have no book, got %q", review.BookID)
	}
	all, err := a.ListReviews()
	if err != nil || len(all) != 1 {
		t.Fatalf("list = (%d, %v)", len(all), err)
	}
}

func TestGetBookStatsZeroWhenUnrated(t *testing.T) {
	a, st := newTestApp(t)
	seedBook(t, st, "b1")
	got, err := a.GetBook("b1")
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	if got.AverageRating != 0 || got.RatingCount != 0 {
		t.Fatalf("stats = %+v, want zeros", got.RatingStats)
	}
	if _, err := a.GetBook("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown book err = %v, want ErrNotFound", err)
	}
}
