package board

import "fmt"

// Departure is one upcoming vehicle departure from a stop.
//
// MinsLeft is 0 when the vehicle is leaving now. MinsNext holds the
// minutes until the departure after this one; 0 means the provider
// sent none.
type Departure struct {
	Line      string
	Direction string
	MinsLeft  int
	MinsNext  int
}

// String renders the departure as a single human-readable line with
// the line designator right-aligned to three characters, for example
// "  4 → Angered in 3m (then 13m)".
func (d Departure) String() string {
	out := fmt.Sprintf("%3s → %s in %dm", d.Line, d.Direction, d.MinsLeft)
	if d.MinsNext > 0 {
		out += fmt.Sprintf(" (then %dm)", d.MinsNext)
	}
	return out
}
