package puzzle_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/knights"
	"github.com/katalvlaran/statespace/puzzle"
)

func TestLoad(t *testing.T) {
	p, err := puzzle.Load(filepath.Join("testdata", "corner.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "corner.yaml", p.Name, "name defaults to the file name")
	assert.Equal(t, 10, p.MaxDepth)
	assert.Equal(t, 1000, p.MaxStates)
	assert.Equal(t, 30*time.Second, p.Timeout)
	assert.Equal(t, []knights.Location{{Row: 0, Col: 0}}, p.Start().Occupied())
	assert.Equal(t, []knights.Location{{Row: 7, Col: 7}}, p.Occupies())
	_, ok := p.Target()
	assert.False(t, ok)

	res, err := bfs.Search(p.Start(), p.Goal(), p.Options()...)
	require.NoError(t, err)
	assert.True(t, res.Solved())
	assert.Equal(t, 6, res.Policy.Len())
}

func TestLoad_Missing(t *testing.T) {
	_, err := puzzle.Load(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestDecode_ExactTarget(t *testing.T) {
	p, err := puzzle.Decode(strings.NewReader(`
name: hop
start: [[4, 4]]
goal:
  board: [[3, 6]]
`))
	require.NoError(t, err)
	target, ok := p.Target()
	require.True(t, ok)
	assert.True(t, target.Equal(knights.MustNew(knights.Location{Row: 3, Col: 6})))
	assert.True(t, p.Goal()(target))
	assert.False(t, p.Goal()(p.Start()))
	assert.Zero(t, p.Timeout)
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]struct {
		doc  string
		also error
	}{
		"malformed pair":  {"start: [[0]]\ngoal: {board: [[1, 2]]}", knights.ErrFormat},
		"off board":       {"start: [[0, 8]]\ngoal: {board: [[1, 2]]}", knights.ErrRange},
		"bad goal square": {"start: [[0, 0]]\ngoal: {occupies: [[-1, 2]]}", knights.ErrRange},
		"non integer":     {"start: [[0, 1.5]]\ngoal: {board: [[1, 2]]}", nil},
		"no goal":         {"start: [[0, 0]]", nil},
		"both goals":      {"start: [[0, 0]]\ngoal: {board: [[1, 2]], occupies: [[1, 2]]}", nil},
		"negative limit":  {"start: [[0, 0]]\ngoal: {board: [[1, 2]]}\nlimits: {max_depth: -1}", nil},
		"bad timeout":     {"start: [[0, 0]]\ngoal: {board: [[1, 2]]}\nlimits: {timeout: soon}", nil},
		"unknown field":   {"start: [[0, 0]]\ngoal: {board: [[1, 2]]}\ncolour: red", nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := puzzle.Decode(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, puzzle.ErrInvalid)
			if tc.also != nil {
				require.ErrorIs(t, err, tc.also)
			}
		})
	}
}

func TestClassics(t *testing.T) {
	all, err := puzzle.Classics()
	require.NoError(t, err)
	require.Len(t, all, 3)

	names := []string{"four-knights", "five-knights", "six-knights"}
	for i, p := range all {
		assert.Equal(t, names[i], p.Name)
		target, ok := p.Target()
		require.True(t, ok)
		assert.Equal(t, p.Start().Len(), target.Len(), "piece count is preserved")
		assert.Equal(t, i+4, p.Start().Len())
		assert.Positive(t, p.Timeout)
	}

	p, err := puzzle.Classic("five-knights")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Start().Len())

	_, err = puzzle.Classic("seven-knights")
	assert.ErrorIs(t, err, puzzle.ErrNotFound)
}

func TestNew(t *testing.T) {
	start := knights.MustNew(knights.Location{Row: 0, Col: 0})
	p := puzzle.NewOccupying("corner", start, knights.Location{Row: 1, Col: 2})
	res, err := bfs.Search(p.Start(), p.Goal(), p.Options()...)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Policy.Len())

	q := puzzle.New("same", start, start)
	res, err = bfs.Search(q.Start(), q.Goal(), q.Options()...)
	require.NoError(t, err)
	assert.Empty(t, res.Policy)
}
