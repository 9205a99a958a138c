package staff

import (
	"context"
	"database/sql"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) List(ctx context.Context) ([]StaffResponse, error) {
	const q = `SELECT id, name, role FROM staff`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StaffResponse{}
	for rows.Next() {
		var r StaffResponse
		if err := rows.Scan(&r.ID, &r.Name, &r.Role); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT 1 FROM staff WHERE id = ?`
	var one int
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Store) Insert(ctx context.Context, m Staff) error {
	const q = `INSERT INTO staff (id, name, role) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, m.ID, m.Name, m.Role)
	return err
}

func (s *Store) Update(ctx context.Context, id string, in UpdateStaffRequest) error {
	const q = `UPDATE staff SET name = ?, role = ? WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, in.Name, in.Role, id)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM staff WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, id)
	return err
}
