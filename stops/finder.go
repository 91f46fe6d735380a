package stops

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned by Find when the pattern is not a
// valid regular expression.
var ErrInvalidPattern = errors.New("invalid stop name pattern")

// Find returns every cached stop whose name contains a match for
// pattern, interpreted as a case-insensitive regular expression
// (search semantics, not a full match). Results keep the provider's
// order. The stop list is loaded, and the on-disk cache refreshed if
// stale, on first use.
func (c *Cache) Find(pattern string) ([]Stop, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}

	if err := c.EnsureLoaded(); err != nil {
		return nil, err
	}

	var out []Stop
	for _, s := range c.stops {
		if re.MatchString(s.Name) {
			out = append(out, s)
		}
	}
	return out, nil
}
