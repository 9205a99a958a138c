package books

import (
	"context"
	"database/sql"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// List returns every book with its derived availability. Availability is
// computed per read so it can never drift from the transactions table.
func (s *Store) List(ctx context.Context) ([]BookResponse, error) {
	const q = `
	SELECT
		b.id, b.title, b.author, b.category, b.copies,
		b.copies - (SELECT COUNT(*) FROM transactions t WHERE t.book_id = b.id AND t.status = 'issued') AS available_copies
	FROM books b`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BookResponse{}
	for rows.Next() {
		var r BookResponse
		if err := rows.Scan(&r.ID, &r.Title, &r.Author, &r.Category, &r.Copies, &r.AvailableCopies); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT 1 FROM books WHERE id = ?`
	var one int
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Store) Insert(ctx context.Context, b Book) error {
	const q = `INSERT INTO books (id, title, author, category, copies) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, b.ID, b.Title, b.Author, b.Category, b.Copies)
	return err
}

func (s *Store) Update(ctx context.Context, id string, in UpdateBookRequest) error {
	const q = `UPDATE books SET title = ?, author = ?, category = ?, copies = ? WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, in.Title, in.Author, in.Category, in.Copies, id)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM books WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, id)
	return err
}

// CountLoans counts transactions referencing the book, open or closed.
func (s *Store) CountLoans(ctx context.Context, id string) (int, error) {
	const q = `SELECT COUNT(*) FROM transactions WHERE book_id = ?`
	var n int
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
