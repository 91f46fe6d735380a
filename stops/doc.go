// Package stops maintains the local snapshot of all Västtrafik stop
// areas and resolves stop-name patterns against it.
//
// The full stop list is large and changes rarely, so it is persisted
// to a single well-known file and only re-downloaded when that file is
// missing or more than a week old. Lookups are regular-expression
// searches over stop names, case-insensitive.
package stops
