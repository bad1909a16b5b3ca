package sections

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boxes map[string]Box

func (b boxes) Bounds(id string) (Box, bool) {
	box, ok := b[id]
	return box, ok
}

func newTracker(t *testing.T, ids ...string) (*Tracker, *ActiveCell) {
	t.Helper()
	cell := NewActiveCell("")
	tr := NewTracker(DefaultOffset, cell)
	require.NoError(t, tr.Configure(ids))
	return tr, cell
}

func TestRecomputeFirstMatchWins(t *testing.T) {
	tr, cell := newTracker(t, "A", "B")

	id, ok := tr.Recompute(boxes{
		"A": {Top: 50, Bottom: 150},
		"B": {Top: 90, Bottom: 200},
	})
	assert.True(t, ok)
	assert.Equal(t, "A", id)
	assert.Equal(t, "A", cell.Get())
}

func TestRecomputeStickyWhenNothingMatches(t *testing.T) {
	tr, cell := newTracker(t, "A", "B")

	tr.Recompute(boxes{"A": {Top: 0, Bottom: 300}})
	require.Equal(t, "A", cell.Get())

	id, ok := tr.Recompute(boxes{
		"A": {Top: -500, Bottom: -10},
		"B": {Top: 400, Bottom: 900},
	})
	assert.False(t, ok)
	assert.Equal(t, "A", id)
	assert.Equal(t, "A", cell.Get())
}

func TestRecomputeSkipsMissingGeometry(t *testing.T) {
	tr, cell := newTracker(t, "ghost", "real")

	id, ok := tr.Recompute(boxes{"real": {Top: 100, Bottom: 100}})
	assert.True(t, ok)
	assert.Equal(t, "real", id)
	assert.Equal(t, "real", cell.Get())

	assert.NotPanics(t, func() { tr.Recompute(nil) })
}

func TestRecomputeEndToEnd(t *testing.T) {
	tr, cell := newTracker(t, "hero", "about", "contact")

	tr.Recompute(boxes{
		"hero":    {Top: 0, Bottom: 600},
		"about":   {Top: 600, Bottom: 1200},
		"contact": {Top: 1200, Bottom: 1600},
	})
	assert.Equal(t, "hero", cell.Get())

	tr.Recompute(boxes{
		"hero":    {Top: -1300, Bottom: -700},
		"about":   {Top: -700, Bottom: -100},
		"contact": {Top: -100, Bottom: 300},
	})
	assert.Equal(t, "contact", cell.Get())
}

func TestConfigureOnce(t *testing.T) {
	tr := NewTracker(DefaultOffset, nil)
	require.NoError(t, tr.Configure([]string{"a", "b"}))
	assert.ErrorIs(t, tr.Configure([]string{"c"}), ErrAlreadyConfigured)
	assert.Equal(t, []string{"a", "b"}, tr.Order())

	fresh := NewTracker(DefaultOffset, nil)
	assert.ErrorIs(t, fresh.Configure([]string{"a", "a"}), ErrDuplicateID)
	assert.NoError(t, fresh.Configure([]string{"a"}), "rejected list does not consume the tracker")
}

func TestNegativeOffsetUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultOffset, NewTracker(-1, nil).Offset())
	assert.Equal(t, 0.0, NewTracker(0, nil).Offset())
}

func TestLayoutGeometry(t *testing.T) {
	l := NewLayout()
	l.Append("hero", 400)
	l.Append("about", 300)
	l.Append("contact", 200)

	assert.Equal(t, 900.0, l.Height())
	start, ok := l.Start("about")
	require.True(t, ok)
	assert.Equal(t, 400.0, start)

	tr, cell := newTracker(t, l.IDs()...)
	for _, tc := range []struct {
		scroll float64
		want   string
	}{
		{0, "hero"},
		{299, "hero"},
		{300, "hero"}, // shared boundary: the earlier section wins
		{301, "about"},
		{650, "contact"},
		{5000, "contact"}, // past the end: sticky
	} {
		tr.Recompute(l.At(tc.scroll))
		assert.Equal(t, tc.want, cell.Get(), "scroll %v", tc.scroll)
	}

	_, ok = l.At(0).Bounds("missing")
	assert.False(t, ok)
}

func TestActiveCellSubscribe(t *testing.T) {
	cell := NewActiveCell("hero")

	var mu sync.Mutex
	var seen []string
	unsubscribe := cell.Subscribe(func(id string) {
		mu.Lock()
		seen = append(seen, id)
		mu.Unlock()
	})

	assert.True(t, cell.Set("about"))
	assert.False(t, cell.Set("about"), "same value is not a change")
	assert.True(t, cell.Set("contact"))
	unsubscribe()
	unsubscribe()
	cell.Set("hero")

	if diff := cmp.Diff([]string{"about", "contact"}, seen); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestKindTable(t *testing.T) {
	assert.Equal(t, DefaultOrder(), []string{
		"hero", "about", "education", "work-experience", "projects",
		"skills", "certifications", "clubs-leadership", "contact",
	})

	for _, k := range All() {
		got, ok := KindFromID(k.ID())
		require.True(t, ok, k.ID())
		assert.Equal(t, k, got)
		assert.NotEmpty(t, k.Info().Title)
		assert.NotZero(t, k.Info().Shortcut)
	}

	_, ok := KindFromID("nope")
	assert.False(t, ok)
	assert.Equal(t, Info{}, Kind(-1).Info())

	var labels []string
	for _, k := range NavItems() {
		labels = append(labels, k.Info().NavLabel)
	}
	assert.Equal(t, []string{"About", "Work", "Skills", "Portfolio", "Contact"}, labels)
}
