package services

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a MySQL unique-key violation,
// checked by error number rather than message text.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// IsDuplicateEntry is the exported form for controllers mapping unique-key
// violations to HTTP 409.
func IsDuplicateEntry(err error) bool {
	return isDuplicateEntry(err)
}
