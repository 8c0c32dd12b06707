package bar

import (
	"strconv"
	"strings"
)

// scaleSteps are the candidate marker intervals, tried smallest first.
var scaleSteps = []int{10, 20, 25, 33, 50}

// Scale returns a line of percentage markers (0, step, 2·step, …) spaced to
// sit under the bar, using the smallest step whose markers stay visually
// separated. Returns false when even 50-point markers would fuse on a bar
// this narrow; callers then simply draw no scale.
//
// Separation is judged by a token-count heuristic rather than geometric
// collision detection: the candidate line is split on whitespace, and if
// that recovers exactly one token per marker, no two markers have merged.
func Scale(b *Bar) (string, bool) {
	for _, step := range scaleSteps {
		line, markers := scaleLine(b, step)
		if len(strings.Fields(line)) == markers {
			return line, true
		}
	}
	return "", false
}

// scaleLine renders every marker for the given step onto one shared line,
// each starting at its percentage offset. Where digit spans overlap, the
// earlier marker's characters win; true collisions are caught by the token
// count in Scale, not here.
func scaleLine(b *Bar, step int) (string, int) {
	var line []rune
	markers := 0

	for value := 0; value <= 100; value += step {
		offset := int(OffsetFromPercent(b, float64(value)))
		for j, digit := range strconv.Itoa(value) {
			pos := offset + j
			for len(line) <= pos {
				line = append(line, ' ')
			}
			if line[pos] == ' ' {
				line[pos] = digit
			}
		}
		markers++
	}

	return string(line), markers
}
