// Package domain contains the core entities of the discussion board: topics,
// articles, comments and users, together with the application-level errors
// raised while validating requests for them. It is independent of any storage
// or delivery mechanism.
package domain
