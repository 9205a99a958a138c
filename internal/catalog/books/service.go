package books

import (
	"context"
	"database/sql"

	"library-backend/internal/platform/apierr"
	"library-backend/internal/platform/db"
)

type Service struct {
	store *Store
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn)}
}

func (s *Service) List(ctx context.Context) ([]BookResponse, error) {
	return s.store.List(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateBookRequest) error {
	if in.Copies <= 0 {
		return apierr.Invalid("copies must be > 0")
	}

	exists, err := s.store.Exists(ctx, in.ID)
	if err != nil {
		return err
	}
	if exists {
		return apierr.Conflict("a book with this id already exists")
	}

	err = s.store.Insert(ctx, Book{
		ID:       in.ID,
		Title:    in.Title,
		Author:   in.Author,
		Category: in.Category,
		Copies:   in.Copies,
	})
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return apierr.Conflict("a book with this id already exists")
		}
		return err
	}
	return nil
}

// Update overwrites every mutable field. An unknown id still reports
// success; the UI relies on that, so no existence check is made.
func (s *Service) Update(ctx context.Context, id string, in UpdateBookRequest) error {
	if in.Copies <= 0 {
		return apierr.Invalid("copies must be > 0")
	}
	return s.store.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.store.CountLoans(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apierr.Conflict("Cannot delete this book as it has existing transaction records. Please ensure all copies are returned.")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if db.IsRowReferenced(err) {
			return apierr.Conflict("Cannot delete this book as it has existing transaction records. Please ensure all copies are returned.")
		}
		return err
	}
	return nil
}
