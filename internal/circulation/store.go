package circulation

import (
	"context"
	"database/sql"
	"time"

	"library-backend/internal/platform/apierr"
	"library-backend/internal/platform/db"
)

type Store struct{ db *sql.DB }

func NewStore(conn *sql.DB) *Store { return &Store{db: conn} }

func (s *Store) BookExists(ctx context.Context, id string) (bool, error) {
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

func (s *Store) StudentExists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT 1 FROM students WHERE id = ?`
	var one int
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// InsertLoanIfAvailable inserts the loan only while the book still has a
// free copy. Availability check and insert are one statement, so two
// concurrent issues cannot both take the last copy. Returns false when no
// row was inserted (book missing or every copy out).
func (s *Store) InsertLoanIfAvailable(ctx context.Context, ulid, bookID, studentID string, issueDate, dueDate time.Time) (bool, error) {
	const q = `
	INSERT INTO transactions (transaction_ulid, book_id, student_id, issue_date, due_date, status)
	SELECT ?, b.id, ?, ?, ?, 'issued'
	FROM books b
	WHERE b.id = ?
	  AND b.copies - (SELECT COUNT(*) FROM transactions t WHERE t.book_id = b.id AND t.status = 'issued') > 0`

	res, err := s.db.ExecContext(ctx, q, ulid, studentID, issueDate, dueDate, bookID)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff == 1, nil
}

func (s *Store) FindOpenLoan(ctx context.Context, bookID string) (*Loan, error) {
	return findOpenLoan(ctx, s.db, bookID)
}

// findOpenLoan returns the most recent open loan for the book; latest issue
// date wins, transaction id breaks ties.
func findOpenLoan(ctx context.Context, q db.DBTX, bookID string) (*Loan, error) {
	const query = `
	SELECT transaction_id, transaction_ulid, book_id, student_id, issue_date, due_date, return_date, status
	FROM transactions
	WHERE book_id = ? AND status = 'issued'
	ORDER BY issue_date DESC, transaction_id DESC
	LIMIT 1`

	var m Loan
	err := q.QueryRowContext(ctx, query, bookID).Scan(
		&m.TransactionID, &m.TransactionULID, &m.BookID, &m.StudentID,
		&m.IssueDate, &m.DueDate, &m.ReturnDate, &m.Status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierr.NotFound("No active issue record found for this book.")
		}
		return nil, err
	}
	return &m, nil
}

func closeLoan(ctx context.Context, q db.DBTX, transactionID int64, returnDate time.Time) error {
	const query = `UPDATE transactions SET return_date = ?, status = 'returned' WHERE transaction_id = ?`
	res, err := q.ExecContext(ctx, query, returnDate, transactionID)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff != 1 {
		return apierr.Internal("failed to close loan")
	}
	return nil
}

// RecentActivity returns the latest transaction events, most recent first.
// A returned loan sorts by its return date, an open one by its issue date.
func (s *Store) RecentActivity(ctx context.Context, limit int) ([]activityRow, error) {
	const q = `
	SELECT t.status, t.issue_date, t.return_date, s.name, b.title
	FROM transactions t
	JOIN students s ON t.student_id = s.id
	JOIN books b ON t.book_id = b.id
	ORDER BY COALESCE(t.return_date, t.issue_date) DESC, t.transaction_id DESC
	LIMIT ?`

	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []activityRow
	for rows.Next() {
		var r activityRow
		if err := rows.Scan(&r.Status, &r.IssueDate, &r.ReturnDate, &r.StudentName, &r.BookTitle); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
