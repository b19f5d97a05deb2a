// Package query turns validated request parameters into parameterized SQL.
//
// Every data value (filters, limits, offsets, inserted fields) is passed as a
// positional bind argument. Identifiers that end up in query text come either
// from the compiled sort allow-lists in this package or, for existence checks,
// from a Reference quoted with pgx.Identifier.
//
// The package also owns the typed request parameters (Page, ArticleSort,
// CommentSort, Order) and their parsers, so a raw query-string token never
// reaches a builder.
package query
