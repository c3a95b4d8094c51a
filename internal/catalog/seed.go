package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSeed is the catalog the shop starts with when no seed file is configured.
func DefaultSeed() []Book {
	return []Book{
		{
			ISBN:   "123456789",
			Title:  "Book 1",
			Author: "Author 1",
			Reviews: []Review{
				{Username: "Shreyas", Comment: "Great book!"},
				{Username: "User2", Comment: "Enjoyed reading it!"},
			},
		},
		{
			ISBN:   "987654321",
			Title:  "Book 2",
			Author: "Author 2",
			Reviews: []Review{
				{Username: "User3", Comment: "Interesting plot!"},
				{Username: "User1", Comment: "Could be better."},
			},
		},
	}
}

type seedFile struct {
	Books []Book `yaml:"books"`
}

// LoadSeedFile reads a YAML catalog of the form:
//
//	books:
//	  - isbn: "123456789"
//	    title: Book 1
//	    author: Author 1
//	    reviews:
//	      - username: Shreyas
//	        comment: Great book!
func LoadSeedFile(path string) ([]Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for i := range f.Books {
		if f.Books[i].Reviews == nil {
			f.Books[i].Reviews = []Review{}
		}
	}
	return f.Books, nil
}
