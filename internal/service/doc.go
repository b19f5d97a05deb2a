// Package service provides the application services for topics, articles,
// comments and users. Services compose store calls, run existence checks
// and own the only multi-statement transaction (article deletion). They
// return store and domain sentinel errors so the API layer can classify them.
package service
