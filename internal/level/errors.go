package level

import (
	"fmt"
	"strings"
)

// UnreachableError rejects one candidate layout: the listed platforms
// cannot be reached from spawn under the jump profile. The generator
// treats it as retryable; after the attempt budget it escalates inside
// a GenerationError.
type UnreachableError struct {
	PlatformIDs []int // ascending platform indices
}

func (e *UnreachableError) Error() string {
	const maxListed = 8
	ids := e.PlatformIDs
	suffix := ""
	if len(ids) > maxListed {
		ids = ids[:maxListed]
		suffix = ", ..."
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("level: %d platform(s) unreachable from spawn: [%s%s]",
		len(e.PlatformIDs), strings.Join(parts, " "), suffix)
}

// GenerationError is the terminal failure of Generate: every attempt
// produced an unreachable layout and the retry budget ran out. The
// message names the parameters most likely at fault so the operator can
// fix the config instead of rerolling forever.
type GenerationError struct {
	Attempts int
	Hint     string
	Err      error // last rejection
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("level: generation failed after %d attempts", e.Attempts)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
