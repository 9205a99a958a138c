package dashboard

import (
	"context"
	"database/sql"
	"time"
)

type Store struct{ db *sql.DB }

func NewStore(conn *sql.DB) *Store { return &Store{db: conn} }

func (s *Store) TotalCopies(ctx context.Context) (int, error) {
	const q = `SELECT COALESCE(SUM(copies), 0) FROM books`
	var n int
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) CountStudents(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM students`
	var n int
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) CountStaff(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM staff`
	var n int
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountOverdue counts open loans whose due date is strictly before today.
// Today comes from the caller's clock, not the DB server's.
func (s *Store) CountOverdue(ctx context.Context, today time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM transactions WHERE status = 'issued' AND due_date < ?`
	var n int
	if err := s.db.QueryRowContext(ctx, q, today).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
