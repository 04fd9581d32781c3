// Package metabolitedb loads named metabolite/derivative formula records
// from a tab-separated database file: fields `name`, `formula`, and
// optionally `charge`, `inchi`. Duplicate names override earlier entries;
// lookup is case-sensitive.
//
// Like isotopedb, this package is an external collaborator: the core never
// opens a database file itself, only consumes the Record values this
// package produces.
package metabolitedb
