package main

import (
	"flag"
	"log"
	"log/slog"
	"time"

	"bookhive/internal/config"
	"bookhive/internal/store"
	"bookhive/internal/util"
	"bookhive/pkg/domain"
)

// Starter catalog.
var books = []domain.Book{
	{
		Title:       "The Great Gatsby",
		Author:      "F. Scott Fitzgerald",
		Description: "A story of ambition and obsession in the Jazz Age.",
		CoverImage:  "https://m.media-amazon.com/images/I/81QuEGw8VPL._AC_UF1000,1000_QL80_.jpg",
		Category:    "Classic",
	},
	{
		Title:       "1984",
		Author:      "George Orwell",
		Description: "A dystopian social science fiction novel and cautionary tale.",
		CoverImage:  "https://m.media-amazon.com/images/I/71kxa1-0mfL._AC_UF1000,1000_QL80_.jpg",
		Category:    "Dystopian",
	},
	{
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Description: "A fantasy novel for children and adults alike.",
		CoverImage:  "https://m.media-amazon.com/images/I/710+HcoP38L._AC_UF1000,1000_QL80_.jpg",
		Category:    "Fantasy",
	},
	{
		Title:       "Pride and Prejudice",
		Author:      "Jane Austen",
		Description: "A romantic novel of manners written by Jane Austen.",
		CoverImage:  "https://m.media-amazon.com/images/I/71Q1tPupKjL._AC_UF1000,1000_QL80_.jpg",
		Category:    "Romance",
	},
}

func main() {
	configPath := flag.String("config", config.ConfigPath, "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	util.InitLogger(cfg.LogLevel)

	st, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	now := time.Now().UTC()
	for _, book := range books {
		book.ID = util.NewID()
		book.CreatedAt = now
		book.UpdatedAt = now
		if err := st.SaveBook(book); err != nil {
			log.Fatalf("failed to seed %q: %v", book.Title, err)
		}
		slog.Info("seeded book", "title", book.Title, "id", book.ID)
		now = now.Add(time.Millisecond) // keep catalog order stable
	}
	slog.Info("catalog seeded", "count", len(books))
}
