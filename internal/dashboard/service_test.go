package dashboard

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/platform/db/dbtest"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestService(t *testing.T, today string) (*Service, *sql.DB) {
	t.Helper()
	conn := dbtest.Open(t)
	now, err := time.Parse("2006-01-02", today)
	require.NoError(t, err)
	return &Service{store: NewStore(conn), clock: fixedClock{now: now}}, conn
}

func seedLoan(t *testing.T, conn *sql.DB, ulid, bookID, studentID, dueDate, status string) {
	t.Helper()
	due, err := time.Parse("2006-01-02", dueDate)
	require.NoError(t, err)
	issue := due.AddDate(0, 0, -9)
	_, err = conn.Exec(`INSERT INTO transactions (transaction_ulid, book_id, student_id, issue_date, due_date, status)
		VALUES (?, ?, ?, ?, ?, ?)`, ulid, bookID, studentID, issue, due, status)
	require.NoError(t, err)
}

func TestStats(t *testing.T) {
	svc, conn := newTestService(t, "2024-03-15")

	_, err := conn.Exec(`INSERT INTO books (id, title, author, category, copies) VALUES
		('B1', 'T1', 'A1', 'C1', 2), ('B2', 'T2', 'A2', 'C2', 4)`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO students (id, name, email, department) VALUES
		('S1', 'Alice', 'a@example.com', 'CS'),
		('S2', 'Bob', 'b@example.com', 'EE'),
		('S3', 'Carol', 'c@example.com', 'ME')`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO staff (id, name, role) VALUES ('ST1', 'Dan', 'Librarian')`)
	require.NoError(t, err)

	seedLoan(t, conn, "L1", "B1", "S1", "2024-03-10", "issued")   // overdue
	seedLoan(t, conn, "L2", "B1", "S2", "2024-03-20", "issued")   // not yet due
	seedLoan(t, conn, "L3", "B2", "S3", "2024-03-01", "returned") // closed, never counts
	seedLoan(t, conn, "L4", "B2", "S1", "2024-03-15", "issued")   // due today, not overdue

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	// Sum of copies, not the number of book rows.
	assert.Equal(t, 6, stats.TotalBooks)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 1, stats.TotalStaff)
	assert.Equal(t, 1, stats.OverdueBooks)
}

func TestStatsEmptyDatabase(t *testing.T) {
	svc, _ := newTestService(t, "2024-03-15")

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &StatsResponse{}, stats)
}
