package circulation

import (
	"context"
	"crypto/rand"
	"database/sql"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"library-backend/internal/platform/apierr"
	"library-backend/internal/platform/db"
)

const (
	dateLayout    = "2006-01-02"
	activityLimit = 5
)

type IDGen interface {
	New() (string, error)
}

type ulidGen struct{}

func (ulidGen) New() (string, error) {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type Service struct {
	db         *sql.DB
	store      *Store
	id         IDGen
	finePerDay int
}

func NewService(conn *sql.DB, finePerDay int) *Service {
	return &Service{
		db:         conn,
		store:      NewStore(conn),
		id:         ulidGen{},
		finePerDay: finePerDay,
	}
}

// Issue opens a loan. It refuses when the student or book is unknown and
// when every copy of the book is already out. Returns the loan ULID.
func (s *Service) Issue(ctx context.Context, req IssueRequest) (string, error) {
	issueDate, err := time.Parse(dateLayout, req.IssueDate)
	if err != nil {
		return "", apierr.Invalid("invalid issueDate format, expected YYYY-MM-DD")
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return "", apierr.Invalid("invalid dueDate format, expected YYYY-MM-DD")
	}

	ok, err := s.store.StudentExists(ctx, req.StudentID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apierr.NotFound("student not found")
	}

	loanULID, err := s.id.New()
	if err != nil {
		return "", err
	}

	inserted, err := s.store.InsertLoanIfAvailable(ctx, loanULID, req.BookID, req.StudentID, issueDate, dueDate)
	if err != nil {
		if db.IsBadReference(err) {
			return "", apierr.NotFound("book not found")
		}
		return "", err
	}
	if !inserted {
		// Either the book does not exist or every copy is out.
		ok, err := s.store.BookExists(ctx, req.BookID)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", apierr.NotFound("book not found")
		}
		return "", apierr.Conflict("no available copies for this book")
	}
	return loanULID, nil
}

// CheckFine previews the fine for returning the book on the given date.
// State is never mutated; the fine is informational only.
func (s *Service) CheckFine(ctx context.Context, req CheckFineRequest) (*FineResponse, error) {
	returnDate, err := time.Parse(dateLayout, req.ReturnDate)
	if err != nil {
		return nil, apierr.Invalid("invalid returnDate format, expected YYYY-MM-DD")
	}

	loan, err := s.store.FindOpenLoan(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	days := overdueDays(loan.DueDate, returnDate)
	return &FineResponse{
		Fine:        days * s.finePerDay,
		OverdueDays: days,
		DueDate:     loan.DueDate.Format(dateLayout),
	}, nil
}

// Return closes the most recent open loan for the book. Lookup and update
// run in one transaction. The fine is not recomputed or stored.
func (s *Service) Return(ctx context.Context, req ReturnRequest) error {
	returnDate, err := time.Parse(dateLayout, req.ReturnDate)
	if err != nil {
		return apierr.Invalid("invalid returnDate format, expected YYYY-MM-DD")
	}

	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		loan, err := findOpenLoan(ctx, tx, req.BookID)
		if err != nil {
			return err
		}
		return closeLoan(ctx, tx, loan.TransactionID, returnDate)
	})
}

// Activity returns the recent transaction feed.
func (s *Service) Activity(ctx context.Context) ([]ActivityItem, error) {
	rows, err := s.store.RecentActivity(ctx, activityLimit)
	if err != nil {
		return nil, err
	}

	out := []ActivityItem{}
	for _, r := range rows {
		item := ActivityItem{
			Status:      r.Status,
			IssueDate:   r.IssueDate.Format(dateLayout),
			StudentName: r.StudentName,
			BookTitle:   r.BookTitle,
		}
		if r.ReturnDate.Valid {
			v := r.ReturnDate.Time.Format(dateLayout)
			item.ReturnDate = &v
		}
		out = append(out, item)
	}
	return out, nil
}

// overdueDays counts whole days past due, rounding any partial day up.
// Returning on or before the due date is free.
func overdueDays(due, returned time.Time) int {
	diff := returned.Sub(due)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}
