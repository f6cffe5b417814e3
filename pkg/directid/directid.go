// Package directid derives the canonical identity of a direct conversation
// from its two participants. Any client can compute it without asking the
// server whether the conversation already exists.
package directid

import (
	"errors"
	"strings"
)

const (
	Prefix    = "direct"
	Separator = ":"
)

var ErrMalformed = errors.New("malformed direct channel id")

// Key returns "direct:{lower}:{higher}" for the unordered pair {a, b}.
func Key(a, b string) string {
	low, high := Sort(a, b)
	return Prefix + Separator + low + Separator + high
}

// Sort orders the pair by byte-wise comparison.
func Sort(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// IsDirect reports whether id looks like a direct display identity.
func IsDirect(id string) bool {
	return strings.HasPrefix(id, Prefix+Separator)
}

// Parse splits a display identity back into its sorted pair.
func Parse(id string) (string, string, error) {
	parts := strings.Split(id, Separator)
	if len(parts) != 3 || parts[0] != Prefix {
		return "", "", ErrMalformed
	}
	low, high := parts[1], parts[2]
	if low == "" || high == "" || low >= high {
		return "", "", ErrMalformed
	}
	return low, high, nil
}

// ValidParticipant reports whether id can take part in a display identity.
func ValidParticipant(id string) bool {
	return strings.TrimSpace(id) != "" && !strings.Contains(id, Separator)
}
