package books

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/platform/apierr"
	"library-backend/internal/platform/db/dbtest"
)

func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()
	conn := dbtest.Open(t)
	return NewService(conn), conn
}

func seedLoan(t *testing.T, conn *sql.DB, ulid, bookID, studentID, status string) {
	t.Helper()
	_, err := conn.Exec(`INSERT INTO students (id, name, email, department) VALUES (?, 'Alice', 'a@example.com', 'CS')
		ON CONFLICT(id) DO NOTHING`, studentID)
	require.NoError(t, err)

	issue, _ := time.Parse("2006-01-02", "2024-01-01")
	due, _ := time.Parse("2006-01-02", "2024-01-10")
	_, err = conn.Exec(`INSERT INTO transactions (transaction_ulid, book_id, student_id, issue_date, due_date, status)
		VALUES (?, ?, ?, ?, ?, ?)`, ulid, bookID, studentID, issue, due, status)
	require.NoError(t, err)
}

func apiCode(t *testing.T, err error) apierr.Code {
	t.Helper()
	var api *apierr.APIError
	require.True(t, errors.As(err, &api), "want APIError, got %v", err)
	return api.Code
}

func TestCreateAndListBooks(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Create(context.Background(), CreateBookRequest{
		ID: "B1", Title: "The Go Programming Language", Author: "Donovan", Category: "Programming", Copies: 3,
	})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B1", list[0].ID)
	assert.Equal(t, 3, list[0].Copies)
	assert.Equal(t, 3, list[0].AvailableCopies)
}

func TestAvailableCopiesSubtractsOpenLoans(t *testing.T) {
	svc, conn := newTestService(t)
	require.NoError(t, svc.Create(context.Background(), CreateBookRequest{
		ID: "B1", Title: "T", Author: "A", Category: "C", Copies: 2,
	}))
	seedLoan(t, conn, "L1", "B1", "S1", "issued")
	seedLoan(t, conn, "L2", "B1", "S1", "returned")

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	// Only the open loan counts against availability.
	assert.Equal(t, 1, list[0].AvailableCopies)
}

func TestCreateDuplicateID(t *testing.T) {
	svc, _ := newTestService(t)
	req := CreateBookRequest{ID: "B1", Title: "T", Author: "A", Category: "C", Copies: 1}

	require.NoError(t, svc.Create(context.Background(), req))
	err := svc.Create(context.Background(), req)
	assert.Equal(t, apierr.CodeConflict, apiCode(t, err))
}

func TestCreateNonPositiveCopies(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Create(context.Background(), CreateBookRequest{
		ID: "B1", Title: "T", Author: "A", Category: "C", Copies: -1,
	})
	assert.Equal(t, apierr.CodeInvalidArgument, apiCode(t, err))
}

func TestUpdateOverwritesFields(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Create(context.Background(), CreateBookRequest{
		ID: "B1", Title: "Old", Author: "A", Category: "C", Copies: 1,
	}))

	err := svc.Update(context.Background(), "B1", UpdateBookRequest{
		Title: "New", Author: "B", Category: "D", Copies: 4,
	})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New", list[0].Title)
	assert.Equal(t, 4, list[0].Copies)
}

func TestUpdateUnknownIDReportsSuccess(t *testing.T) {
	svc, _ := newTestService(t)

	// No existence check happens on update; a missing id is not an error.
	err := svc.Update(context.Background(), "ghost", UpdateBookRequest{
		Title: "T", Author: "A", Category: "C", Copies: 1,
	})
	assert.NoError(t, err)
}

func TestDeleteReferencedBook(t *testing.T) {
	svc, conn := newTestService(t)
	require.NoError(t, svc.Create(context.Background(), CreateBookRequest{
		ID: "B1", Title: "T", Author: "A", Category: "C", Copies: 1,
	}))
	seedLoan(t, conn, "L1", "B1", "S1", "returned")

	err := svc.Delete(context.Background(), "B1")
	assert.Equal(t, apierr.CodeConflict, apiCode(t, err))

	// Row is left intact.
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteUnreferencedBook(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Create(context.Background(), CreateBookRequest{
		ID: "B1", Title: "T", Author: "A", Category: "C", Copies: 1,
	}))

	require.NoError(t, svc.Delete(context.Background(), "B1"))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
