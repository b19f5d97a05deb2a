// Package store defines interfaces for data persistence operations on the
// board's topics, articles, comments and users, the sentinel errors every
// implementation reports, and the existence-check contract used to tell a
// missing resource apart from an empty result.
package store
