package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL error numbers the services translate into API errors.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

func mysqlErrNumber(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

// IsDuplicateEntry reports whether err is a unique key violation.
func IsDuplicateEntry(err error) bool { return mysqlErrNumber(err) == mysqlErrDuplicateEntry }

// IsRowReferenced reports whether a DELETE was blocked by rows that still
// reference the target.
func IsRowReferenced(err error) bool { return mysqlErrNumber(err) == mysqlErrRowIsReferenced }

// IsBadReference reports whether an INSERT/UPDATE pointed at a missing parent row.
func IsBadReference(err error) bool { return mysqlErrNumber(err) == mysqlErrNoReferencedRow }
