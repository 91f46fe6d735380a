package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidStopID is returned by Fetch for a negative stop
// identifier. Valid ids come from the stop finder and are always
// non-negative; the guard catches caller mix-ups early.
var ErrInvalidStopID = errors.New("invalid stop id")

// Client provides the raw departure-board response for one stop.
// Satisfied by api.Client.
type Client interface {
	DepartureBoard(stopID int) ([]byte, error)
}

// Fetcher retrieves departure boards from the provider.
type Fetcher struct {
	client Client
}

// NewFetcher creates a departure fetcher on top of the given client.
func NewFetcher(client Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch returns the next few departures (as many as the provider
// chooses to send) from the given stop, in response order.
func (f *Fetcher) Fetch(stopID int) ([]Departure, error) {
	if stopID < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStopID, stopID)
	}

	body, err := f.client.DepartureBoard(stopID)
	if err != nil {
		return nil, err
	}

	var entries []boardEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse departure board: %w", err)
	}

	out := make([]Departure, 0, len(entries))
	for _, e := range entries {
		d, err := newDeparture(e)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// newDeparture maps one response element to a Departure. The sentinel
// "now" means zero minutes left; a null, zero or missing second value
// means no known following departure.
func newDeparture(e boardEntry) (Departure, error) {
	minsLeft, err := minutes(e.RTMinutesLeft1)
	if err != nil {
		return Departure{}, fmt.Errorf("departure %s towards %s: %w", e.Name, e.Direction, err)
	}
	minsNext, err := minutes(e.RTMinutesLeft2)
	if err != nil {
		return Departure{}, fmt.Errorf("departure %s towards %s: %w", e.Name, e.Direction, err)
	}
	return Departure{
		Line:      e.Name,
		Direction: e.Direction,
		MinsLeft:  minsLeft,
		MinsNext:  minsNext,
	}, nil
}

func minutes(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return int(t), nil
	case string:
		if t == "now" {
			return 0, nil
		}
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, fmt.Errorf("bad minutes value %q", t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("bad minutes value %v", v)
	}
}
