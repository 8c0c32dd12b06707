package ui

// Glyphs used to draw the clock bar and its annotations.
const (
	CharFilled = '█' // Elapsed slot
	CharEmpty  = '░' // Unelapsed slot
	CharBegin  = '[' // Cap drawn just before the bar's first slot
	CharEnd    = ']' // Cap drawn just after the bar's last slot
	CharMarker = '|' // Points from a text label to its exact bar column
)
