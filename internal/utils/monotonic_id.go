package utils

import (
	"fmt"
	"sync/atomic"
	"time"
)

var idSequence atomic.Uint64

// NextTimeOrderedID returns a unique identifier that sorts by creation time.
// It combines the current unix-milli timestamp with a process-wide sequence
// counter, so IDs issued within the same millisecond remain distinct and
// ordered.
func NextTimeOrderedID() string {
	return fmt.Sprintf("%013d-%06d", time.Now().UnixMilli(), idSequence.Add(1))
}
