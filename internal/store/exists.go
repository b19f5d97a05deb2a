package store

import (
	"context"
	"fmt"

	"github.com/newsboard/newsboard-api/internal/query"
)

// ExistenceChecker confirms that a referenced row exists.
type ExistenceChecker interface {
	// Exists reports whether at least one row of ref matches value.
	Exists(ctx context.Context, ref query.Reference, value any) (bool, error)
}

// RequireExists returns notFound when no row of ref matches value. Lookup
// failures are returned wrapped.
func RequireExists(
	ctx context.Context,
	checker ExistenceChecker,
	ref query.Reference,
	value any,
	notFound error,
) error {
	ok, err := checker.Exists(ctx, ref, value)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", ref, err)
	}
	if !ok {
		return notFound
	}
	return nil
}
