package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"blogapi/internal/apperr"
	"blogapi/internal/http/middleware"
	"blogapi/internal/models"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Wrap(apperr.BadRequest, err, "Invalid request")
	}
	return nil
}

// decodePatch is decodeJSON for partial updates, where an empty body is an
// empty patch.
func decodePatch(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && err != io.EOF {
		return apperr.Wrap(apperr.BadRequest, err, "Invalid request")
	}
	return nil
}

// identity returns the caller set by the identity middleware.
func identity(r *http.Request) models.Identity {
	id, _ := middleware.IdentityFrom(r.Context())
	return id
}

// queryInt parses an integer query parameter, falling back to def when it is
// absent, malformed or zero.
func queryInt(r *http.Request, name string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n == 0 {
		return def
	}
	return n
}

// pageFromQuery reads startIndex and limit. sortParam names the parameter
// that selects ascending order with the value "asc".
func pageFromQuery(r *http.Request, sortParam string) models.Page {
	return models.Page{
		StartIndex: queryInt(r, "startIndex", 0),
		Limit:      queryInt(r, "limit", models.DefaultPageLimit),
		Ascending:  r.URL.Query().Get(sortParam) == "asc",
	}
}
