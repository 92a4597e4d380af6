// Package chat implements the messenger feature: a shared message log kept
// in SQLite, written by whoever holds the current session.
//
// The schema is managed by goose (see the migrations subpackage). Service
// is the entry point for the presentation layer; SQLiteRepository is the
// storage adapter and runs against either *sql.DB or *sql.Tx via dbx.DBTX.
package chat
