package query

import (
	"math"
	"strconv"

	"github.com/newsboard/newsboard-api/internal/domain"
)

// DefaultLimit is the page size used when the request does not set one.
const DefaultLimit = 10

// MaxOffset bounds (p-1)*limit so the OFFSET bound to the query always fits
// a 32-bit int.
const MaxOffset = math.MaxInt32

// Page holds request-scoped pagination. Number is 1-based; zero means no
// page was requested and no OFFSET is emitted.
type Page struct {
	Limit  int
	Number int
}

// ParsePage validates the raw limit and p query values. Empty values fall
// back to their defaults; anything else must be an integer of at least 1.
func ParsePage(limit, page string) (Page, error) {
	p := Page{Limit: DefaultLimit}

	if limit != "" {
		n, err := parsePositive(limit)
		if err != nil {
			return Page{}, domain.NewValidationError("limit", "must be a positive integer", domain.ErrInvalidRequest)
		}
		p.Limit = n
	}

	if page != "" {
		n, err := parsePositive(page)
		if err != nil {
			return Page{}, domain.NewValidationError("p", "must be a positive integer", domain.ErrInvalidRequest)
		}
		p.Number = n
	}

	if p.Number > 1 && int64(p.Number-1)*int64(p.Limit) > MaxOffset {
		return Page{}, domain.NewValidationError("p", "is beyond the last possible page", domain.ErrInvalidRequest)
	}

	return p, nil
}

// Offset returns (Number-1)*Limit and whether an offset applies at all.
func (p Page) Offset() (int, bool) {
	if p.Number <= 0 {
		return 0, false
	}
	return (p.Number - 1) * p.limit(), true
}

func (p Page) limit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}
	return p.Limit
}

func parsePositive(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return int(n), nil
}

// ParseID validates a surrogate key taken from a path segment. Keys are
// stored as INT, so anything outside the signed 32-bit range is rejected.
func ParseID(field, raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.NewValidationError(field, "has invalid format", domain.ErrInvalidRequest)
	}
	return int(id), nil
}
