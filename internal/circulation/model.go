package circulation

import (
	"database/sql"
	"time"
)

// Loan status values as stored in transactions.status.
const (
	StatusIssued   = "issued"
	StatusReturned = "returned"
)

// Loan is one row of the transactions table.
type Loan struct {
	TransactionID   int64
	TransactionULID string
	BookID          string
	StudentID       string
	IssueDate       time.Time
	DueDate         time.Time
	ReturnDate      sql.NullTime
	Status          string
}

// activityRow is one transaction joined with the student name and book title.
type activityRow struct {
	Status      string
	IssueDate   time.Time
	ReturnDate  sql.NullTime
	StudentName string
	BookTitle   string
}
