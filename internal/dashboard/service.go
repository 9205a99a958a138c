package dashboard

import (
	"context"
	"database/sql"
	"time"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Service struct {
	store *Store
	clock Clock
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn), clock: realClock{}}
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	totalBooks, err := s.store.TotalCopies(ctx)
	if err != nil {
		return nil, err
	}
	totalStudents, err := s.store.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	totalStaff, err := s.store.CountStaff(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	overdue, err := s.store.CountOverdue(ctx, today)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalBooks:    totalBooks,
		TotalStudents: totalStudents,
		TotalStaff:    totalStaff,
		OverdueBooks:  overdue,
	}, nil
}
