package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/travelhub/hotel-booking-service/internal/domain"
)

// PathInt64 extracts a positive int64 path variable.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path parameter %q", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid path parameter %q: %s", name, raw)
	}
	return v, nil
}

// QueryDate parses an optional YYYY-MM-DD query parameter.
// Returns nil when the parameter is absent.
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date parameter %q: %s", name, raw)
	}
	return &t, nil
}

// QueryString returns an optional query parameter, nil when absent.
func QueryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryBool parses an optional boolean query parameter, false when absent.
func QueryBool(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}
