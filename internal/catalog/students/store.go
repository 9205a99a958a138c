package students

import (
	"context"
	"database/sql"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) List(ctx context.Context) ([]StudentResponse, error) {
	const q = `SELECT id, name, email, department FROM students`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StudentResponse{}
	for rows.Next() {
		var r StudentResponse
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Department); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
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

func (s *Store) Insert(ctx context.Context, m Student) error {
	const q = `INSERT INTO students (id, name, email, department) VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, m.ID, m.Name, m.Email, m.Department)
	return err
}

func (s *Store) Update(ctx context.Context, id string, in UpdateStudentRequest) error {
	const q = `UPDATE students SET name = ?, email = ?, department = ? WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, in.Name, in.Email, in.Department, id)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM students WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, id)
	return err
}

// CountLoans counts transactions referencing the student, open or closed.
func (s *Store) CountLoans(ctx context.Context, id string) (int, error) {
	const q = `SELECT COUNT(*) FROM transactions WHERE student_id = ?`
	var n int
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// History returns every loan of the student, newest issue first.
func (s *Store) History(ctx context.Context, id string) ([]historyRow, error) {
	const q = `
	SELECT t.issue_date, t.due_date, t.return_date, t.status, b.title
	FROM transactions t
	JOIN books b ON t.book_id = b.id
	WHERE t.student_id = ?
	ORDER BY t.issue_date DESC, t.transaction_id DESC`

	rows, err := s.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []historyRow
	for rows.Next() {
		var r historyRow
		if err := rows.Scan(&r.IssueDate, &r.DueDate, &r.ReturnDate, &r.Status, &r.BookTitle); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
