package models

import (
	"strconv"
	"time"
)

// NewID returns a millisecond-timestamp record id. Uniqueness relies on
// call spacing, matching the id scheme the synced tables were created
// with; collisions within the same millisecond are not detected.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
