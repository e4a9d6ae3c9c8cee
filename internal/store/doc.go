// Package store provides the optional evaluation audit log.
//
// Each trigger invocation may append one immutable row recording the
// decision it produced. The log records decisions, never contract
// text; executed-contract persistence is deliberately out of scope.
//
// SQLite with WAL mode is used so concurrent readers (history) never
// block the single writer (trigger).
package store
