package editor

import (
	"fmt"
	"sync/atomic"
	"time"
)

// seq disambiguates ids generated within the same millisecond.
var seq atomic.Int64

func newID(prefix string) string {
	return fmt.Sprintf("%s%d-%d", prefix, time.Now().UnixMilli(), seq.Add(1))
}

// NewCaseID generates a unique case id from the current time plus a
// monotonic counter.
func NewCaseID() string { return newID("c") }

// NewExperienceID generates a unique experience item id.
func NewExperienceID() string { return newID("e") }
