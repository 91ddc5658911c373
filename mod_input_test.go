package demo2d

import (
	"testing"
	"time"

	"github.com/bocanonline/demo2d/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(ks ...scene.Key) scene.KeySet {
	var set scene.KeySet
	for _, k := range ks {
		set.Set(k, true)
	}
	return set
}

func TestInput_UpdateEdges(t *testing.T) {
	l, out, _ := newBufferLogger(true)
	var in Input

	in.update(keys(scene.KeyRotateLeft), l)
	assert.True(t, in.IsKeyDown(scene.KeyRotateLeft))
	assert.True(t, in.JustPressed.IsKeyDown(scene.KeyRotateLeft))
	assert.Contains(t, out.String(), "keyboard input: rotate-left")

	out.Reset()
	in.update(keys(scene.KeyRotateLeft, scene.KeySelect2), l)
	assert.False(t, in.JustPressed.IsKeyDown(scene.KeyRotateLeft), "held, not pressed again")
	assert.True(t, in.JustPressed.IsKeyDown(scene.KeySelect2))
	assert.NotContains(t, out.String(), "rotate-left")

	in.update(keys(), l)
	assert.False(t, in.IsKeyDown(scene.KeyRotateLeft))
	assert.True(t, in.JustReleased.IsKeyDown(scene.KeyRotateLeft))
	assert.True(t, in.JustReleased.IsKeyDown(scene.KeySelect2))
}

func TestKeyToGlfw_CoversEveryKeyOnce(t *testing.T) {
	physical := map[any]scene.Key{}
	for k := scene.KeyNone + 1; k < scene.KeyCount; k++ {
		g, ok := keyToGlfw[k]
		require.True(t, ok, "no physical key for %s", k)
		prev, dup := physical[g]
		assert.False(t, dup, "%s and %s share a physical key", prev, k)
		physical[g] = k
	}
}

func TestParseHold(t *testing.T) {
	h, err := ParseHold("move-up=1s")
	require.NoError(t, err)
	assert.Equal(t, Hold{Key: scene.KeyMoveUp, Duration: time.Second}, h)

	h, err = ParseHold("rotate-left@500ms=2s")
	require.NoError(t, err)
	assert.Equal(t, Hold{Key: scene.KeyRotateLeft, Start: 500 * time.Millisecond, Duration: 2 * time.Second}, h)

	for _, bad := range []string{"move-up", "fly=1s", "move-up=soon", "move-up@x=1s", "move-up=-1s"} {
		_, err := ParseHold(bad)
		assert.Error(t, err, bad)
	}
	_, err = ParseHold("fly=1s")
	assert.ErrorIs(t, err, scene.ErrInvalidKey)
}

func TestScriptedInput_Windows(t *testing.T) {
	s := &ScriptedInput{Holds: []Hold{
		{Key: scene.KeyMoveUp, Duration: time.Second},
		{Key: scene.KeyZoomIn, Start: time.Second, Duration: 500 * time.Millisecond},
	}}

	down := func(elapsed float32) (bool, bool) {
		ks, quit := s.Poll(elapsed)
		assert.False(t, quit)
		return ks.IsKeyDown(scene.KeyMoveUp), ks.IsKeyDown(scene.KeyZoomIn)
	}

	up, zoom := down(0)
	assert.False(t, up, "holds start after their start time")
	assert.False(t, zoom)

	up, zoom = down(1.0 / 60)
	assert.True(t, up)
	assert.False(t, zoom)

	up, zoom = down(1)
	assert.True(t, up, "end is inclusive")
	assert.False(t, zoom)

	up, zoom = down(1.25)
	assert.False(t, up)
	assert.True(t, zoom)

	assert.Equal(t, 1500*time.Millisecond, s.End())
}

type quitAfter struct {
	polls int
	limit int
}

func (q *quitAfter) Poll(float32) (scene.KeySet, bool) {
	q.polls++
	return scene.KeySet{}, q.polls >= q.limit
}

func TestInputModule_QuitStopsRun(t *testing.T) {
	src := &quitAfter{limit: 3}
	app, err := NewAppBuilder().UseModule(
		LoggingModule{Logger: NewNopLogger()},
		TimeModule{Clock: &FixedClock{Step: 0.1}},
		InputModule{Source: src},
	).Build()
	require.NoError(t, err)

	app.Run()

	assert.Equal(t, 3, src.polls)
	assert.Equal(t, uint64(3), app.Frame())
}

func TestInputModule_NeedsWindowOrSource(t *testing.T) {
	_, err := NewAppBuilder().UseModule(TimeModule{Clock: &FixedClock{}}, InputModule{}).Build()
	assert.Error(t, err)
}
