package bar

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale_WideBar(t *testing.T) {
	b, err := Build(dayCycle(t), 100)
	require.NoError(t, err)

	line, ok := Scale(b)
	require.True(t, ok, "100 columns is plenty for 10-point markers")

	// The smallest candidate step that stays legible wins.
	fields := strings.Fields(line)
	require.Len(t, fields, 11)
	for i, f := range fields {
		assert.Equal(t, strconv.Itoa(i*10), f, "marker %d", i)
	}

	// Markers start at their percentage offsets.
	assert.Equal(t, byte('0'), line[0])
	assert.Equal(t, "10", line[10:12])
	assert.Equal(t, "50", line[50:52])
}

func TestScale_TokensParseBack(t *testing.T) {
	// Whenever a scale is produced, splitting on whitespace must recover
	// one token per marker and each token must parse back to its value.
	for _, length := range []int{10, 25, 40, 80, 120, 200} {
		b, err := Build(dayCycle(t), length)
		require.NoError(t, err)

		line, ok := Scale(b)
		if !ok {
			continue
		}

		fields := strings.Fields(line)
		prev := -1
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			require.NoError(t, err, "length %d: token %q should be numeric", length, f)
			assert.Greater(t, v, prev, "length %d: markers should ascend", length)
			assert.LessOrEqual(t, v, 100)
			prev = v
		}
	}
}

func TestScale_NarrowBarSelectsCoarserStep(t *testing.T) {
	// Ten columns cannot separate 10/20/25-point markers, but 33-point
	// markers fit: 0, 33, 66, 99.
	b, err := Build(dayCycle(t), 10)
	require.NoError(t, err)

	line, ok := Scale(b)
	require.True(t, ok)
	assert.Equal(t, []string{"0", "33", "66", "99"}, strings.Fields(line))
}

func TestScale_TooNarrowReturnsAbsent(t *testing.T) {
	b, err := Build(dayCycle(t), 5)
	require.NoError(t, err)

	line, ok := Scale(b)
	assert.False(t, ok, "no candidate step can separate markers on 5 columns")
	assert.Empty(t, line)
}

func TestScale_Deterministic(t *testing.T) {
	b, err := Build(dayCycle(t), 73)
	require.NoError(t, err)

	a, okA := Scale(b)
	c, okC := Scale(b)
	assert.Equal(t, okA, okC)
	assert.Equal(t, a, c)
}

func TestScaleLine_FirstWriterWins(t *testing.T) {
	// When digit spans collide, the earlier marker's characters survive;
	// the token-count check is what rejects the layout, not the overlap
	// resolution.
	b, err := Build(dayCycle(t), 10)
	require.NoError(t, err)

	line, markers := scaleLine(b, 10)
	assert.Equal(t, 11, markers)
	assert.NotEqual(t, markers, len(strings.Fields(line)), "10-point markers fuse on 10 columns")
	// Marker 0 occupies column 0 and is not overwritten by later markers.
	assert.Equal(t, byte('0'), line[0])
}
