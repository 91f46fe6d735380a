package stops

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Stop is a named stop area with its provider-assigned identifier.
type Stop struct {
	ID   int
	Name string
}

// stopArea mirrors one element of the provider's stop-areas response.
// The gid field arrives sometimes as a JSON string, sometimes as a
// number.
type stopArea struct {
	GID  any    `json:"gid"`
	Name string `json:"name"`
}

func parseStops(data []byte) ([]Stop, error) {
	// Real gids run to 16 digits, past float64's integer range, so
	// numeric gids must stay json.Number instead of becoming float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []stopArea
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse stop list: %w", err)
	}

	out := make([]Stop, 0, len(raw))
	for _, a := range raw {
		id, err := toInt(a.GID)
		if err != nil {
			return nil, fmt.Errorf("stop %q: bad gid: %w", a.Name, err)
		}
		out = append(out, Stop{ID: id, Name: a.Name})
	}
	return out, nil
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case string:
		return strconv.Atoi(t)
	case json.Number:
		i, err := t.Int64()
		return int(i), err
	default:
		return 0, fmt.Errorf("not an integer: %v", v)
	}
}
