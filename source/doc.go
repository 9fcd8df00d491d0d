// Package source provides the daily counts that the encode command turns into
// a calstream body: a CSV reader and a SQLite-backed counter.
package source
