package staff

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

func (s *Service) List(ctx context.Context) ([]StaffResponse, error) {
	return s.store.List(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateStaffRequest) error {
	exists, err := s.store.Exists(ctx, in.ID)
	if err != nil {
		return err
	}
	if exists {
		return apierr.Conflict("a staff member with this id already exists")
	}

	err = s.store.Insert(ctx, Staff{ID: in.ID, Name: in.Name, Role: in.Role})
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return apierr.Conflict("a staff member with this id already exists")
		}
		return err
	}
	return nil
}

// Update overwrites every mutable field. An unknown id still reports
// success; the UI relies on that, so no existence check is made.
func (s *Service) Update(ctx context.Context, id string, in UpdateStaffRequest) error {
	return s.store.Update(ctx, id, in)
}

// Delete removes the row unconditionally; nothing references staff.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
