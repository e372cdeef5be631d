package dive_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/dive"
)

const example = `forward 5
down 5
forward 8
up 3
down 8
forward 2
`

func TestPositions_Example(t *testing.T) {
	cmds, err := dive.Parse(strings.NewReader(example))
	require.NoError(t, err)
	require.Len(t, cmds, 6)

	assert.Equal(t, int64(150), dive.Position(cmds))
	assert.Equal(t, int64(900), dive.AimedPosition(cmds))
}

func TestParseCommand_Errors(t *testing.T) {
	for _, line := range []string{"forward", "sideways 3", "up x", "down 1 2"} {
		_, err := dive.ParseCommand(line)
		assert.ErrorIs(t, err, dive.ErrBadCommand, line)
	}
}

func TestParse_CRLFAndBlankLines(t *testing.T) {
	text := strings.ReplaceAll(example, "\n", "\r\n\r\n")
	cmds, err := dive.Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, cmds, 6)
	assert.Equal(t, int64(900), dive.AimedPosition(cmds))

	_, err = dive.Parse(strings.NewReader("forward 5\r\nup\r\n"))
	assert.ErrorIs(t, err, dive.ErrBadCommand)
}
