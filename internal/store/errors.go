package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an insert would violate a uniqueness
	// constraint (e.g., a topic with an existing slug).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when a write references a row that does
	// not exist (foreign key violation).
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidInput is returned when the storage engine rejects a value as
	// malformed for its column type.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransactionFailed is returned when a database transaction fails
	// to begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrArticleIDNotFound indicates that an article looked up by id does not exist.
	ErrArticleIDNotFound = fmt.Errorf("%w: article id", ErrNotFound)

	// ErrArticleNotFound indicates that an article targeted for deletion does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTopicNotFound indicates that a topic used as a filter does not exist.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)

	// ErrTopicExists indicates that a topic with the given slug already exists.
	ErrTopicExists = fmt.Errorf("%w: topic", ErrDuplicate)
)
