package board

import (
	"errors"
	"reflect"
	"testing"
)

type fakeClient struct {
	body  []byte
	err   error
	calls int
}

func (f *fakeClient) DepartureBoard(stopID int) ([]byte, error) {
	f.calls++
	return f.body, f.err
}

func TestFetch_MapsResponseInOrder(t *testing.T) {
	body := `[
		{"name": "4", "direction": "Angered", "rtMinutesLeft1": "now", "rtMinutesLeft2": 13},
		{"name": "4", "direction": "Mölndal", "rtMinutesLeft1": 3, "rtMinutesLeft2": null},
		{"name": "58", "direction": "Hjällbo", "rtMinutesLeft1": "8"}
	]`
	fetcher := NewFetcher(&fakeClient{body: []byte(body)})

	deps, err := fetcher.Fetch(9021014003760000)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	want := []Departure{
		{Line: "4", Direction: "Angered", MinsLeft: 0, MinsNext: 13},
		{Line: "4", Direction: "Mölndal", MinsLeft: 3, MinsNext: 0},
		{Line: "58", Direction: "Hjällbo", MinsLeft: 8, MinsNext: 0},
	}
	if !reflect.DeepEqual(deps, want) {
		t.Errorf("Fetch = %v, want %v", deps, want)
	}
}

func TestFetch_EmptyBoard(t *testing.T) {
	fetcher := NewFetcher(&fakeClient{body: []byte(`[]`)})

	deps, err := fetcher.Fetch(42)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(deps) != 0 {
		t.Errorf("expected no departures, got %v", deps)
	}
}

func TestFetch_NegativeStopID(t *testing.T) {
	client := &fakeClient{body: []byte(`[]`)}
	fetcher := NewFetcher(client)

	_, err := fetcher.Fetch(-1)
	if !errors.Is(err, ErrInvalidStopID) {
		t.Errorf("expected ErrInvalidStopID, got %v", err)
	}
	if client.calls != 0 {
		t.Errorf("a rejected id should not hit the network, got %d calls", client.calls)
	}
}

func TestFetch_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: `<html>`},
		{name: "bad minutes string", body: `[{"name": "4", "direction": "Angered", "rtMinutesLeft1": "soon"}]`},
		{name: "bad minutes type", body: `[{"name": "4", "direction": "Angered", "rtMinutesLeft1": {"m": 3}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := NewFetcher(&fakeClient{body: []byte(tt.body)})
			if _, err := fetcher.Fetch(1); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestFetch_PropagatesClientError(t *testing.T) {
	fetcher := NewFetcher(&fakeClient{err: errors.New("connection refused")})

	if _, err := fetcher.Fetch(1); err == nil {
		t.Error("client failure should propagate")
	}
}
