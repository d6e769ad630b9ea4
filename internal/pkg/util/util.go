package util

import (
	"fmt"
	"strings"
	"time"
)

// GenerateTimestampWithPrefix builds a human-scannable record id, unique
// enough for a single-writer flow.
func GenerateTimestampWithPrefix(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// SubdomainFromHost extracts the tenant subdomain from a request host,
// ignoring the port. Hosts without a subdomain resolve to an empty string.
func SubdomainFromHost(host string) string {
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}

	return parts[0]
}
