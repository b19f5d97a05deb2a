// Package api implements the HTTP handlers for the discussion board API.
// Handlers parse and validate path, query and body input, call the
// services and translate every failure into the client-facing error
// vocabulary through HandleAPIError.
package api
