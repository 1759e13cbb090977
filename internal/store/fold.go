package store

import (
	"database/sql"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	// driverName is go-sqlite3 with the fold collation and function attached
	// to every connection.
	driverName = "sqlite3_hotelref"

	collationName = "HOTELFOLD"
	foldFuncName  = "hotelfold"
)

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if err := conn.RegisterCollation(collationName, CompareNames); err != nil {
				return err
			}
			return conn.RegisterFunc(foldFuncName, FoldKey, true)
		},
	})
}

// FoldKey returns the key used to order and search names.
// cases.Caser is stateful, so a fresh one is built per call.
func FoldKey(s string) string {
	return norm.NFC.String(cases.Fold().String(norm.NFC.String(s)))
}

// CompareNames orders two names by fold key. It returns 0 for names that
// differ only in case or normalization form.
func CompareNames(a, b string) int {
	return strings.Compare(FoldKey(a), FoldKey(b))
}
