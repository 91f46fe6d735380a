package vasttrafik

import (
	"log"
	"os"
)

// InitLogging sends log output to stderr so it never mixes with the
// departure listings on stdout.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
