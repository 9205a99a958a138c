package books

// Book is one row of the books table.
type Book struct {
	ID       string
	Title    string
	Author   string
	Category string
	Copies   int
}
