// Package vasttrafik looks up Västtrafik stops and departures.
//
// The package wires three parts: an HTTP client for the provider's two
// endpoints, a file-backed cache of the full stop-area list, and a
// departure-board fetcher. The cache file lives in the system temp
// directory and is refreshed when older than a week; everything else
// is fetched live.
package vasttrafik

import (
	"github.com/theoremus-urban-solutions/vasttrafik/api"
	"github.com/theoremus-urban-solutions/vasttrafik/board"
	"github.com/theoremus-urban-solutions/vasttrafik/config"
	"github.com/theoremus-urban-solutions/vasttrafik/stops"
)

// Service ties the provider client, the stop cache and the departure
// fetcher together behind the two operations callers need.
type Service struct {
	Stops      *stops.Cache
	Departures *board.Fetcher
}

// NewService wires a Service from the application configuration.
func NewService(cfg *config.AppConfig) *Service {
	client := api.NewClient(cfg.API)
	return &Service{
		Stops:      stops.NewCache(client, cfg.Cache.File, cfg.Cache.MaxAge()),
		Departures: board.NewFetcher(client),
	}
}

// FindStops returns the id and full name of every stop matching the
// given case-insensitive regular expression, loading the stop cache on
// first use.
func (s *Service) FindStops(pattern string) ([]stops.Stop, error) {
	return s.Stops.Find(pattern)
}

// NextDepartures returns the next few departures (as defined by
// Västtrafik's whims) from the given stop. Stop ids are obtained by
// calling FindStops.
func (s *Service) NextDepartures(stopID int) ([]board.Departure, error) {
	return s.Departures.Fetch(stopID)
}
