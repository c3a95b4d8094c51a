package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"bookshop/internal/catalog"
)

func main() {
	count, err := strconv.Atoi(getEnv("SEED_COUNT", "1000"))
	if err != nil || count <= 0 {
		log.Fatalf("invalid SEED_COUNT %q", os.Getenv("SEED_COUNT"))
	}
	output := getEnv("SEED_OUTPUT", "catalog.yaml")

	log.Printf("Generating %d books...", count)
	books := generateBooks(count, rand.New(rand.NewSource(rand.Int63())))

	if err := writeSeedFile(output, books); err != nil {
		log.Fatalf("Failed to write seed file: %v", err)
	}
	log.Printf("Wrote %d books to %s (set CATALOG_SEED_FILE=%s)", len(books), output, output)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

var reviewers = []string{"Shreyas", "User2", "Asha", "Marco", "Yuki", "Lena", "Omar", "Priya"}

// generateBooks builds count books with unique isbns and at most one review per reviewer.
func generateBooks(count int, rng *rand.Rand) []catalog.Book {
	books := make([]catalog.Book, 0, count)
	for i := 0; i < count; i++ {
		book := catalog.Book{
			ISBN:    fmt.Sprintf("978%010d", i+1),
			Title:   fmt.Sprintf("Book Title %d - %s", i+1, randomWord(rng)),
			Author:  fmt.Sprintf("Author %d", 1+rng.Intn(count/10+1)),
			Reviews: []catalog.Review{},
		}
		for _, idx := range rng.Perm(len(reviewers))[:rng.Intn(4)] {
			book.Reviews = append(book.Reviews, catalog.Review{
				Username: reviewers[idx],
				Comment:  fmt.Sprintf("A book about %s.", randomWord(rng)),
			})
		}
		books = append(books, book)

		if (i+1)%1000 == 0 {
			log.Printf("Generated %d/%d books", i+1, count)
		}
	}
	return books
}

func writeSeedFile(path string, books []catalog.Book) error {
	raw, err := yaml.Marshal(struct {
		Books []catalog.Book `yaml:"books"`
	}{Books: books})
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func randomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}
