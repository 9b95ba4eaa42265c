package space_test

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/space"
)

// pos is a point on a bounded line; it is its own descriptor.
type pos int

func (p pos) String() string { return strconv.Itoa(int(p)) }

// line is a State on [0, max] that steps by ±1.
type line struct {
	at, max int
}

func (l line) Key() string { return strconv.Itoa(l.at) }

func (l line) Equal(other space.State) bool {
	o, ok := other.(line)
	return ok && o.at == l.at
}

func (l line) Successors() []space.Transition {
	var out []space.Transition
	for _, d := range []int{-1, 1} {
		n := l.at + d
		if n < 0 || n > l.max {
			continue
		}
		out = append(out, space.Transition{
			Action: space.UnitAction(pos(l.at), pos(n)),
			Next:   line{at: n, max: l.max},
		})
	}
	return out
}

func TestNewAction(t *testing.T) {
	a, err := space.NewAction(pos(1), pos(2), 2.5)
	require.NoError(t, err)
	assert.Equal(t, pos(1), a.Source())
	assert.Equal(t, pos(2), a.Target())
	assert.Equal(t, 2.5, a.Cost())
	assert.Equal(t, "1->2", a.String())

	zero, err := space.NewAction(pos(1), pos(1), 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero.Cost())

	_, err = space.NewAction(pos(1), pos(2), -1)
	assert.ErrorIs(t, err, space.ErrNegativeCost)
	_, err = space.NewAction(pos(1), pos(2), math.NaN())
	assert.ErrorIs(t, err, space.ErrNegativeCost)
}

func TestAction_Equality(t *testing.T) {
	a := space.UnitAction(pos(3), pos(4))
	b, err := space.NewAction(pos(3), pos(4), 1)
	require.NoError(t, err)
	assert.True(t, a == b)
	assert.False(t, a == space.UnitAction(pos(4), pos(3)))

	var zero space.Action
	assert.Equal(t, "<nil>-><nil>", zero.String())
}

func TestAction_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(space.UnitAction(pos(0), pos(1)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":0,"target":1,"cost":1}`, string(b))
}

func TestPolicy(t *testing.T) {
	c, err := space.NewAction(pos(1), pos(2), 0.5)
	require.NoError(t, err)
	p := space.Policy{space.UnitAction(pos(0), pos(1)), c}
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 1.5, p.Cost())
	assert.Equal(t, "0->1, 1->2", p.String())
	assert.Equal(t, "", space.Policy{}.String())
}

func TestReplay(t *testing.T) {
	start := line{at: 0, max: 5}
	p := space.Policy{
		space.UnitAction(pos(0), pos(1)),
		space.UnitAction(pos(1), pos(2)),
		space.UnitAction(pos(2), pos(1)),
	}
	end, err := space.Replay(start, p)
	require.NoError(t, err)
	assert.True(t, end.Equal(line{at: 1, max: 5}))

	same, err := space.Replay(start, nil)
	require.NoError(t, err)
	assert.True(t, same.Equal(start))

	_, err = space.Replay(start, space.Policy{space.UnitAction(pos(0), pos(2))})
	assert.ErrorIs(t, err, space.ErrIllegalAction)
	assert.Contains(t, err.Error(), "step 0")

	_, err = space.Replay(nil, p)
	assert.ErrorIs(t, err, space.ErrNilState)
}

func TestGoals(t *testing.T) {
	two := space.EqualTo(line{at: 2})
	assert.True(t, two(line{at: 2, max: 9}))
	assert.False(t, two(line{at: 3}))
	assert.False(t, two(nil))

	three := space.EqualTo(line{at: 3})
	assert.True(t, space.Any(two, three)(line{at: 3}))
	assert.False(t, space.Any()(line{at: 3}))
	assert.False(t, space.All(two, three)(line{at: 3}))
	assert.True(t, space.All()(line{at: 3}))
}
