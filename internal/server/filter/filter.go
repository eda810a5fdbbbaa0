// Package filter reads listing and navigation parameters from API requests.
package filter

import (
	"net/http"
	"strings"

	"github.com/agentstation/spotmap/pkg/navigation"
)

// Listing holds the raw listing parameters of a request. Values are not
// validated here; the selection controller falls back on bad input.
type Listing struct {
	Region   string
	Category string
	Sort     string
}

// ParseListing extracts region, category and sort from the query string.
func ParseListing(r *http.Request) Listing {
	q := r.URL.Query()
	return Listing{
		Region:   strings.TrimSpace(q.Get("region")),
		Category: strings.TrimSpace(q.Get("category")),
		Sort:     strings.TrimSpace(q.Get("sort")),
	}
}

// ParseNavigate builds the target of ?action=&id=.
func ParseNavigate(r *http.Request) (navigation.Target, error) {
	q := r.URL.Query()
	return navigation.FromAction(q.Get("action"), q.Get("id"))
}
