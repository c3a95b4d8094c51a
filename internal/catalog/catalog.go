package catalog

// Review is a single user's comment on a book.
type Review struct {
	Username string `json:"username" yaml:"username"`
	Comment  string `json:"comment" yaml:"comment"`
}

// Book is a catalog entry together with its reviews in creation order.
type Book struct {
	ISBN    string   `json:"isbn" yaml:"isbn"`
	Title   string   `json:"title" yaml:"title"`
	Author  string   `json:"author" yaml:"author"`
	Reviews []Review `json:"reviews" yaml:"reviews"`
}

// Summary is the listing view of a book.
type Summary struct {
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
}

// Clone returns a copy of the book that shares no memory with b.
func (b Book) Clone() Book {
	out := b
	out.Reviews = make([]Review, len(b.Reviews))
	copy(out.Reviews, b.Reviews)
	return out
}

func (b Book) Summary() Summary {
	return Summary{ISBN: b.ISBN, Title: b.Title}
}

// ReviewIndex returns the position of username's review, or -1.
func (b *Book) ReviewIndex(username string) int {
	for i, r := range b.Reviews {
		if r.Username == username {
			return i
		}
	}
	return -1
}
