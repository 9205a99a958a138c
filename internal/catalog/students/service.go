package students

import (
	"context"
	"database/sql"

	"library-backend/internal/platform/apierr"
	"library-backend/internal/platform/db"
)

const dateLayout = "2006-01-02"

type Service struct {
	store *Store
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn)}
}

func (s *Service) List(ctx context.Context) ([]StudentResponse, error) {
	return s.store.List(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateStudentRequest) error {
	exists, err := s.store.Exists(ctx, in.ID)
	if err != nil {
		return err
	}
	if exists {
		return apierr.Conflict("a student with this id already exists")
	}

	err = s.store.Insert(ctx, Student{
		ID:         in.ID,
		Name:       in.Name,
		Email:      in.Email,
		Department: in.Department,
	})
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return apierr.Conflict("a student with this id already exists")
		}
		return err
	}
	return nil
}

// Update overwrites every mutable field. An unknown id still reports
// success; the UI relies on that, so no existence check is made.
func (s *Service) Update(ctx context.Context, id string, in UpdateStudentRequest) error {
	return s.store.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.store.CountLoans(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apierr.Conflict("Cannot delete this student as they have existing transaction records.")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if db.IsRowReferenced(err) {
			return apierr.Conflict("Cannot delete this student as they have existing transaction records.")
		}
		return err
	}
	return nil
}

func (s *Service) History(ctx context.Context, id string) ([]HistoryItem, error) {
	rows, err := s.store.History(ctx, id)
	if err != nil {
		return nil, err
	}

	out := []HistoryItem{}
	for _, r := range rows {
		item := HistoryItem{
			IssueDate: r.IssueDate.Format(dateLayout),
			DueDate:   r.DueDate.Format(dateLayout),
			Status:    r.Status,
			BookTitle: r.BookTitle,
		}
		if r.ReturnDate.Valid {
			v := r.ReturnDate.Time.Format(dateLayout)
			item.ReturnDate = &v
		}
		out = append(out, item)
	}
	return out, nil
}
