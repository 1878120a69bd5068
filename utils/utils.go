package utils

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns the current Unix time in milliseconds as a decimal string.
// Ids double as a creation-order sequence, which the "active booking for a
// room" rule depends on, so two calls in the same millisecond still get
// strictly increasing values.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
