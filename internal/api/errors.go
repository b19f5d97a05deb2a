package api

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/newsboard/newsboard-api/internal/api/shared"
	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/store"
)

// ErrEndpointNotFound is returned for requests that match no route.
var ErrEndpointNotFound = errors.New("endpoint does not exist")

// ErrorKind is the client-facing category of a failure.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidRequest
	KindIncompleteBody
	KindBadSort
	KindInvalidSelection
	KindNotFound
	KindKeyConflict
	KindEndpointNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindIncompleteBody:
		return "incomplete_body"
	case KindBadSort:
		return "bad_sort"
	case KindInvalidSelection:
		return "invalid_selection"
	case KindNotFound:
		return "not_found"
	case KindKeyConflict:
		return "key_conflict"
	case KindEndpointNotFound:
		return "endpoint_not_found"
	default:
		return "internal"
	}
}

// Classification is the normalized form of an error: what kind it is, the
// status to send and the message clients see.
type Classification struct {
	Kind    ErrorKind
	Status  int
	Message string
}

// Client-facing messages.
const (
	msgInvalidRequest   = "Invalid request"
	msgIncompleteBody   = "Incomplete body"
	msgBadSort          = "Bad request"
	msgInvalidSelection = "Invalid selection"
	msgIDNotFound       = "Id not found"
	msgArticleNotFound  = "Article not found"
	msgCommentNotFound  = "Comment not found"
	msgUserNotFound     = "User not found"
	msgTopicNotFound    = "Topic not found"
	msgKeyConflict      = "Key already exists"
	msgEndpointNotFound = "Endpoint does not exist"
	msgInternal         = "Internal server error"
)

// PostgreSQL codes recognized when an error reaches the boundary unmapped.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNumericValueOutOfRange    = "22003"
	pgInvalidRowCountInLimit    = "2201W"
	pgInvalidRowCountInOffset   = "2201X"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

// Classify maps any error onto exactly one Classification. Application
// sentinels take precedence over raw PostgreSQL codes; anything left is
// an internal error.
func Classify(err error) Classification {
	switch {
	case err == nil:
		return Classification{KindInternal, http.StatusInternalServerError, msgInternal}

	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, store.ErrInvalidInput):
		return Classification{KindInvalidRequest, http.StatusBadRequest, msgInvalidRequest}

	case errors.Is(err, domain.ErrIncompleteBody):
		return Classification{KindIncompleteBody, http.StatusBadRequest, msgIncompleteBody}

	case errors.Is(err, domain.ErrBadSort):
		return Classification{KindBadSort, http.StatusBadRequest, msgBadSort}

	case errors.Is(err, ErrEndpointNotFound):
		return Classification{KindEndpointNotFound, http.StatusNotFound, msgEndpointNotFound}

	case errors.Is(err, store.ErrArticleNotFound):
		return Classification{KindNotFound, http.StatusNotFound, msgArticleNotFound}

	case errors.Is(err, store.ErrCommentNotFound):
		return Classification{KindNotFound, http.StatusNotFound, msgCommentNotFound}

	case errors.Is(err, store.ErrUserNotFound):
		return Classification{KindNotFound, http.StatusNotFound, msgUserNotFound}

	case errors.Is(err, store.ErrTopicNotFound):
		return Classification{KindNotFound, http.StatusNotFound, msgTopicNotFound}

	// Covers store.ErrArticleIDNotFound and any other lookup by id.
	case errors.Is(err, store.ErrNotFound):
		return Classification{KindNotFound, http.StatusNotFound, msgIDNotFound}

	case errors.Is(err, store.ErrDuplicate):
		return Classification{KindKeyConflict, http.StatusBadRequest, msgKeyConflict}

	case errors.Is(err, store.ErrInvalidReference):
		return Classification{KindInvalidSelection, http.StatusNotFound, msgInvalidSelection}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation, pgNumericValueOutOfRange,
			pgInvalidRowCountInLimit, pgInvalidRowCountInOffset:
			return Classification{KindInvalidRequest, http.StatusBadRequest, msgInvalidRequest}
		case pgForeignKeyViolation:
			return Classification{KindInvalidSelection, http.StatusNotFound, msgInvalidSelection}
		case pgUniqueViolation:
			return Classification{KindKeyConflict, http.StatusBadRequest, msgKeyConflict}
		}
	}

	return Classification{KindInternal, http.StatusInternalServerError, msgInternal}
}

// HandleAPIError classifies err, logs it and writes the normalized error body.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	c := Classify(err)
	shared.RespondWithErrorAndLog(w, r, c.Status, c.Message, err)
}
