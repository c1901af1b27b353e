package lib

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID generates a prefixed entity id, e.g. "prod_5f3c…".
// The prefix keeps ids self-describing in logs and webhook payloads.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// NewAffiliateCode generates the tracking code appended to product URLs.
// Codes are never reused; the short form keeps tracking URLs readable.
func NewAffiliateCode() string {
	return fmt.Sprintf("aff_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
