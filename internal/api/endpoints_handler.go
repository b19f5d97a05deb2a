package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/newsboard/newsboard-api/internal/api/shared"
)

// endpointsDoc describes every route; it is served verbatim by GET /api.
//
//go:embed endpoints.json
var endpointsDoc []byte

// EndpointsDocument returns the embedded endpoint description.
func EndpointsDocument() json.RawMessage {
	return json.RawMessage(endpointsDoc)
}

// GetEndpoints handles GET /api requests
func GetEndpoints(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, endpointsEnvelope{Endpoints: EndpointsDocument()})
}

// NotFound responds to requests that match no route, including known paths
// requested with an unsupported method.
func NotFound(w http.ResponseWriter, r *http.Request) {
	HandleAPIError(w, r, ErrEndpointNotFound)
}
