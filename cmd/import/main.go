package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"bookhive/internal/config"
	"bookhive/internal/importer"
	"bookhive/internal/storage"
	"bookhive/internal/store"
	"bookhive/internal/util"
	"bookhive/pkg/domain"
)

func main() {
	configPath := flag.String("config", config.ConfigPath, "path to config file")
	filePath := flag.String("file", "", "source file (.pdf, .epub, .html, .txt)")
	title := flag.String("title", "", "book title")
	author := flag.String("author", "", "book author")
	description := flag.String("description", "", "book description")
	coverImage := flag.String("cover", "", "cover image URL")
	category := flag.String("category", "", "book category")
	pageSize := flag.Int("page-size", importer.DefaultPageSize, "runes per generated page")
	flag.Parse()

	if *filePath == "" || *title == "" || *author == "" {
		log.Fatal("usage: import -file <path> -title <title> -author <author> [-description ...] [-cover ...] [-category ...]")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	util.InitLogger(cfg.LogLevel)

	st, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	pages, err := importer.NewParser(*pageSize).Pages(*filePath)
	if err != nil {
		log.Fatalf("failed to parse %s: %v", *filePath, err)
	}

	now := time.Now().UTC()
	book := domain.Book{
		ID:          util.NewID(),
		Title:       *title,
		Author:      *author,
		Description: *description,
		CoverImage:  *coverImage,
		Category:    *category,
		Pages:       pages,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if cfg.MinioEndpoint != "" {
		book.SourceKey = archiveSource(cfg, book.ID, *filePath)
	}

	if err := st.SaveBook(book); err != nil {
		log.Fatalf("failed to save book: %v", err)
	}
	slog.Info("book imported", "id", book.ID, "title", book.Title, "pages", len(book.Pages), "source_key", book.SourceKey)
}

// archiveSource uploads the original file so readers can download it later.
func archiveSource(cfg config.FileConfig, bookID, path string) string {
	archive, err := storage.NewArchive(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("failed to init archive: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open %s: %v", path, err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		log.Fatalf("failed to stat %s: %v", path, err)
	}

	ext := filepath.Ext(path)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := storage.BookKey(bookID, ext)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := archive.Put(ctx, key, file, info.Size(), contentType); err != nil {
		log.Fatalf("failed to archive source file: %v", err)
	}
	return key
}
