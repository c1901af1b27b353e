package handling

import (
	"net/http"
	"strconv"
	"strings"

	"ollacart_server/structs"
)

// ParseProductSearchRequest reads the catalog search selectors from query
// parameters. Absent flags mean "the caller's own products".
func ParseProductSearchRequest(r *http.Request) structs.ProductSearchRequest {
	q := r.URL.Query()

	req := structs.ProductSearchRequest{
		Purchased: q.Get("purchased") == "true",
		Shared:    q.Get("shared") == "true",
		Social:    q.Get("social") == "true",
		UserID:    strings.TrimSpace(q.Get("user_id")),
	}

	if raw := q.Get("user_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.UserIDs = append(req.UserIDs, id)
			}
		}
	}

	if raw := q.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			req.Limit = limit
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			req.Offset = offset
		}
	}

	return req
}

// ParseDays reads the analytics window size, defaulting to 30 days.
func ParseDays(r *http.Request) int {
	if raw := r.URL.Query().Get("days"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days > 0 {
			return days
		}
	}
	return 30
}
