package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theoremus-urban-solutions/vasttrafik"
	"github.com/theoremus-urban-solutions/vasttrafik/config"
	"github.com/theoremus-urban-solutions/vasttrafik/stops"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run holds the whole CLI flow so tests can drive it. Exit codes:
// 0 for listings (and for the usage text), 1 when patterns were given
// but matched no stop, 2 on any error.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("vasttrafik", flag.ContinueOnError)
	configPath := fs.String("config", "vasttrafik.yml", "path to YAML config file (optional)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	vasttrafik.InitLogging()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		return 2
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = readDefaults()
	}
	if len(patterns) == 0 {
		printUsage(stdout)
		return 0
	}

	svc := vasttrafik.NewService(cfg)

	var matched []stops.Stop
	for _, pattern := range patterns {
		found, err := svc.FindStops(pattern)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		// Patterns that match nothing contribute nothing, silently.
		matched = append(matched, found...)
	}
	if len(matched) == 0 {
		fmt.Fprintln(stdout, "No matching stops found.")
		return 1
	}

	for _, stop := range matched {
		fmt.Fprintln(stdout, stop.Name+":")
		deps, err := svc.NextDepartures(stop.ID)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		for _, dep := range deps {
			fmt.Fprintln(stdout, "  "+dep.String())
		}
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Prints the next few Västtrafik departures from the stops matching the given regular expressions.")
	fmt.Fprintf(w, "Usage: %s <stop> [<stop2> ...]\n", filepath.Base(os.Args[0]))
}
