package usecase

import (
	"strings"
	"time"
)

// referenceInstant returns now as given, or the use case clock in its
// configured location when now is zero.
func (uc *implUseCase) referenceInstant(now time.Time) time.Time {
	if !now.IsZero() {
		return now
	}
	return uc.clock().In(uc.loc)
}

// splitLines returns the non-blank lines of raw, each kept verbatim apart
// from a trailing carriage return.
func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
