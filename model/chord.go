package model

type Triad struct {
	Root  NoteName
	Notes [3]NoteName

	// "", "m", "dim", "aug", or "?" when the stacked thirds fit none of those
	Quality string
	Name    string
}
