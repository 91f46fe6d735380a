package board

// boardEntry mirrors one element of the provider's departure-board
// response. The rtMinutesLeft fields arrive as a number, a numeric
// string, the sentinel "now", or null.
type boardEntry struct {
	Name           string `json:"name"`
	Direction      string `json:"direction"`
	RTMinutesLeft1 any    `json:"rtMinutesLeft1"`
	RTMinutesLeft2 any    `json:"rtMinutesLeft2"`
}
