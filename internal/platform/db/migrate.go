package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema when it does not exist yet. The DDL sticks to
// the subset MySQL and SQLite both accept; the auto-increment keyword is the
// one dialect split, selected by driver.
func Migrate(conn *sql.DB, driver string) error {
	autoinc := "AUTO_INCREMENT"
	if driver == "sqlite3" {
		autoinc = "AUTOINCREMENT"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS books (
			id       VARCHAR(32)  PRIMARY KEY,
			title    VARCHAR(255) NOT NULL,
			author   VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			copies   INTEGER      NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id         VARCHAR(32)  PRIMARY KEY,
			name       VARCHAR(255) NOT NULL,
			email      VARCHAR(255) NOT NULL,
			department VARCHAR(100) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS staff (
			id   VARCHAR(32)  PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			role VARCHAR(100) NOT NULL
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id   INTEGER PRIMARY KEY %s,
			transaction_ulid VARCHAR(26) NOT NULL UNIQUE,
			book_id          VARCHAR(32) NOT NULL,
			student_id       VARCHAR(32) NOT NULL,
			issue_date       DATE        NOT NULL,
			due_date         DATE        NOT NULL,
			return_date      DATE,
			status           VARCHAR(10) NOT NULL,
			FOREIGN KEY (book_id) REFERENCES books(id),
			FOREIGN KEY (student_id) REFERENCES students(id)
		)`, autoinc),
	}

	for _, q := range stmts {
		if _, err := conn.Exec(q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
