package students

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

func seedBook(t *testing.T, conn *sql.DB, id, title string) {
	t.Helper()
	_, err := conn.Exec(`INSERT INTO books (id, title, author, category, copies) VALUES (?, ?, 'Author', 'General', 5)`,
		id, title)
	require.NoError(t, err)
}

func seedLoan(t *testing.T, conn *sql.DB, ulid, bookID, studentID, issueDate, status string, returned *string) {
	t.Helper()
	issue, err := time.Parse(dateLayout, issueDate)
	require.NoError(t, err)
	due := issue.AddDate(0, 0, 9)

	var returnDate any
	if returned != nil {
		rd, err := time.Parse(dateLayout, *returned)
		require.NoError(t, err)
		returnDate = rd
	}
	_, err = conn.Exec(`INSERT INTO transactions (transaction_ulid, book_id, student_id, issue_date, due_date, return_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, ulid, bookID, studentID, issue, due, returnDate, status)
	require.NoError(t, err)
}

func apiCode(t *testing.T, err error) apierr.Code {
	t.Helper()
	var api *apierr.APIError
	require.True(t, errors.As(err, &api), "want APIError, got %v", err)
	return api.Code
}

func TestCreateAndListStudents(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Create(context.Background(), CreateStudentRequest{
		ID: "S1", Name: "Alice", Email: "alice@example.com", Department: "CS",
	})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Name)
	assert.Equal(t, "CS", list[0].Department)
}

func TestCreateDuplicateID(t *testing.T) {
	svc, _ := newTestService(t)
	req := CreateStudentRequest{ID: "S1", Name: "Alice", Email: "a@example.com", Department: "CS"}

	require.NoError(t, svc.Create(context.Background(), req))
	err := svc.Create(context.Background(), req)
	assert.Equal(t, apierr.CodeConflict, apiCode(t, err))
}

func TestUpdateUnknownIDReportsSuccess(t *testing.T) {
	svc, _ := newTestService(t)

	// No existence check happens on update; a missing id is not an error.
	err := svc.Update(context.Background(), "ghost", UpdateStudentRequest{
		Name: "Alice", Email: "a@example.com", Department: "CS",
	})
	assert.NoError(t, err)
}

func TestHistoryNewestFirst(t *testing.T) {
	svc, conn := newTestService(t)
	require.NoError(t, svc.Create(context.Background(), CreateStudentRequest{
		ID: "S1", Name: "Alice", Email: "a@example.com", Department: "CS",
	}))
	seedBook(t, conn, "B1", "First Book")
	seedBook(t, conn, "B2", "Second Book")
	seedBook(t, conn, "B3", "Third Book")

	returned := "2024-01-20"
	seedLoan(t, conn, "L1", "B1", "S1", "2024-01-05", "returned", &returned)
	seedLoan(t, conn, "L2", "B2", "S1", "2024-02-01", "issued", nil)
	seedLoan(t, conn, "L3", "B3", "S1", "2024-01-15", "issued", nil)

	items, err := svc.History(context.Background(), "S1")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Second Book", items[0].BookTitle)
	assert.Equal(t, "Third Book", items[1].BookTitle)
	assert.Equal(t, "First Book", items[2].BookTitle)

	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i].IssueDate, items[i-1].IssueDate)
	}

	assert.Nil(t, items[0].ReturnDate)
	require.NotNil(t, items[2].ReturnDate)
	assert.Equal(t, "2024-01-20", *items[2].ReturnDate)
	assert.Equal(t, "returned", items[2].Status)
}

func TestHistoryEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	items, err := svc.History(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteReferencedStudent(t *testing.T) {
	svc, conn := newTestService(t)
	require.NoError(t, svc.Create(context.Background(), CreateStudentRequest{
		ID: "S1", Name: "Alice", Email: "a@example.com", Department: "CS",
	}))
	seedBook(t, conn, "B1", "Title")
	seedLoan(t, conn, "L1", "B1", "S1", "2024-01-01", "returned", nil)

	err := svc.Delete(context.Background(), "S1")
	assert.Equal(t, apierr.CodeConflict, apiCode(t, err))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteUnreferencedStudent(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Create(context.Background(), CreateStudentRequest{
		ID: "S1", Name: "Alice", Email: "a@example.com", Department: "CS",
	}))

	require.NoError(t, svc.Delete(context.Background(), "S1"))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
