package middleware

import (
	"strings"
)

const bearerPrefix = "Bearer "

// BearerToken extracts the token from an Authorization header value.
// Headers without the "Bearer " prefix or with an empty token are malformed.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
