package students

import (
	"database/sql"
	"time"
)

// Student is one row of the students table.
type Student struct {
	ID         string
	Name       string
	Email      string
	Department string
}

// historyRow is one loan of the student joined with the book title.
type historyRow struct {
	IssueDate  time.Time
	DueDate    time.Time
	ReturnDate sql.NullTime
	Status     string
	BookTitle  string
}
