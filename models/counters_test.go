package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPoolCountState(t *testing.T) {
	cases := []struct {
		name  string
		flags Flags
		want  CountState
	}{
		{"active cuy in active pool", Flags{PoolActive: true, CuyActive: true, Live: true}, CountedActive},
		{"inactive cuy in active pool", Flags{PoolActive: true, Live: true}, Uncounted},
		{"inactive pool keeps snapshot", Flags{Live: true}, CountedInactive},
		{"inactive pool with active cuy", Flags{CuyActive: true, Live: true}, CountedInactive},
		{"dead cuy", Flags{PoolActive: true, CuyActive: true}, Uncounted},
		{"dead cuy in inactive pool", Flags{}, Uncounted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PoolCountState(tc.flags))
		})
	}
}

func TestShedCountState(t *testing.T) {
	cases := []struct {
		name  string
		flags Flags
		want  CountState
	}{
		{"all active", Flags{ShedActive: true, PoolActive: true, CuyActive: true, Live: true}, CountedActive},
		{"inactive pool in active shed", Flags{ShedActive: true, CuyActive: true, Live: true}, Uncounted},
		{"inactive cuy in active shed", Flags{ShedActive: true, PoolActive: true, Live: true}, Uncounted},
		{"inactive shed keeps snapshot", Flags{Live: true}, CountedInactive},
		{"saca cuy", Flags{ShedActive: true, PoolActive: true, CuyActive: true}, Uncounted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShedCountState(tc.flags))
		})
	}
}

func TestCountStateString(t *testing.T) {
	assert.Equal(t, "counted_active", CountedActive.String())
	assert.Equal(t, "counted_inactive", CountedInactive.String())
	assert.Equal(t, "uncounted", Uncounted.String())
	assert.False(t, Uncounted.Counted())
	assert.True(t, CountedInactive.Counted())
}

var allActive = Flags{ShedActive: true, PoolActive: true, CuyActive: true, Live: true}

func TestDiff(t *testing.T) {
	cases := []struct {
		name   string
		before Placement
		after  Placement
		want   []CounterDelta
	}{
		{
			name:   "add to active pool",
			before: Placement{},
			after:  PlacementOf(1, 10, GenreMale, allActive),
			want: []CounterDelta{
				{Level: LevelPool, Id: 10, Genre: GenreMale, Delta: 1},
				{Level: LevelShed, Id: 1, Genre: GenreMale, Delta: 1},
			},
		},
		{
			name:   "no change",
			before: PlacementOf(1, 10, GenreMale, allActive),
			after:  PlacementOf(1, 10, GenreMale, allActive),
			want:   nil,
		},
		{
			name:   "genre change",
			before: PlacementOf(1, 10, GenreChild, allActive),
			after:  PlacementOf(1, 10, GenreFemale, allActive),
			want: []CounterDelta{
				{Level: LevelPool, Id: 10, Genre: GenreChild, Delta: -1},
				{Level: LevelPool, Id: 10, Genre: GenreFemale, Delta: 1},
				{Level: LevelShed, Id: 1, Genre: GenreChild, Delta: -1},
				{Level: LevelShed, Id: 1, Genre: GenreFemale, Delta: 1},
			},
		},
		{
			name:   "genre change of inactive cuy in active pool",
			before: PlacementOf(1, 10, GenreChild, Flags{ShedActive: true, PoolActive: true, Live: true}),
			after:  PlacementOf(1, 10, GenreFemale, Flags{ShedActive: true, PoolActive: true, Live: true}),
			want:   nil,
		},
		{
			name:   "deactivate",
			before: PlacementOf(1, 10, GenreFemale, allActive),
			after:  PlacementOf(1, 10, GenreFemale, Flags{ShedActive: true, PoolActive: true, Live: true}),
			want: []CounterDelta{
				{Level: LevelPool, Id: 10, Genre: GenreFemale, Delta: -1},
				{Level: LevelShed, Id: 1, Genre: GenreFemale, Delta: -1},
			},
		},
		{
			name:   "death in inactive pool of active shed",
			before: PlacementOf(1, 10, GenreMale, Flags{ShedActive: true, Live: true}),
			after:  PlacementOf(1, 10, GenreMale, Flags{ShedActive: true}),
			want: []CounterDelta{
				{Level: LevelPool, Id: 10, Genre: GenreMale, Delta: -1},
			},
		},
		{
			name:   "mobilization within one shed",
			before: PlacementOf(1, 10, GenreMale, allActive),
			after:  PlacementOf(1, 11, GenreMale, allActive),
			want: []CounterDelta{
				{Level: LevelPool, Id: 10, Genre: GenreMale, Delta: -1},
				{Level: LevelPool, Id: 11, Genre: GenreMale, Delta: 1},
			},
		},
		{
			name:   "mobilization across sheds",
			before: PlacementOf(1, 10, GenreMale, allActive),
			after:  PlacementOf(2, 20, GenreMale, allActive),
			want: []CounterDelta{
				{Level: LevelPool, Id: 10, Genre: GenreMale, Delta: -1},
				{Level: LevelPool, Id: 20, Genre: GenreMale, Delta: 1},
				{Level: LevelShed, Id: 1, Genre: GenreMale, Delta: -1},
				{Level: LevelShed, Id: 2, Genre: GenreMale, Delta: 1},
			},
		},
		{
			name:   "delete",
			before: PlacementOf(1, 10, GenreChild, Flags{Live: true}),
			after:  Placement{},
			want: []CounterDelta{
				{Level: LevelPool, Id: 10, Genre: GenreChild, Delta: -1},
				{Level: LevelShed, Id: 1, Genre: GenreChild, Delta: -1},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Diff(tc.before, tc.after)); diff != "" {
				t.Fatalf("Diff mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ledger applies deltas in memory the way applyDeltas does in MySQL,
// including the zero floor on decrements.
type ledger map[CounterLevel]map[int]map[Genre]int

func (l ledger) apply(deltas []CounterDelta) (anomalies int) {
	for _, d := range deltas {
		if l[d.Level] == nil {
			l[d.Level] = map[int]map[Genre]int{}
		}
		if l[d.Level][d.Id] == nil {
			l[d.Level][d.Id] = map[Genre]int{}
		}
		if d.Delta < 0 && l[d.Level][d.Id][d.Genre] == 0 {
			anomalies++
			continue
		}
		l[d.Level][d.Id][d.Genre] += d.Delta
	}
	return anomalies
}

func (l ledger) total(level CounterLevel, id int) int {
	sum := 0
	for _, n := range l[level][id] {
		sum += n
	}
	return sum
}

func TestDiffScenarioThreeCuys(t *testing.T) {
	l := ledger{}
	for _, g := range []Genre{GenreMale, GenreFemale, GenreFemale} {
		assert.Zero(t, l.apply(Diff(Placement{}, PlacementOf(1, 10, g, allActive))))
	}
	assert.Equal(t, 2, l[LevelShed][1][GenreFemale])
	assert.Equal(t, 1, l[LevelShed][1][GenreMale])
	assert.Equal(t, 3, l.total(LevelShed, 1))
	assert.Equal(t, 3, l.total(LevelPool, 10))
}

func TestDiffDeathRoundTrip(t *testing.T) {
	l := ledger{}
	live := PlacementOf(1, 10, GenreFemale, allActive)
	l.apply(Diff(Placement{}, live))
	l.apply(Diff(Placement{}, PlacementOf(1, 10, GenreMale, allActive)))
	before := cloneLedger(l)

	dead := PlacementOf(1, 10, GenreFemale, Flags{ShedActive: true, PoolActive: true})
	l.apply(Diff(live, dead))
	assert.Equal(t, 1, l.total(LevelPool, 10))
	assert.Equal(t, 1, l.total(LevelShed, 1))

	// removing the death leaves the cuy inactive, so it stays uncounted
	// until it is activated again
	revived := PlacementOf(1, 10, GenreFemale, Flags{ShedActive: true, PoolActive: true, Live: true})
	l.apply(Diff(dead, revived))
	l.apply(Diff(revived, live))
	if diff := cmp.Diff(before, l); diff != "" {
		t.Fatalf("counters not restored (-before +after):\n%s", diff)
	}
}

func TestDiffFloorSkipsNegative(t *testing.T) {
	l := ledger{}
	anomalies := l.apply(Diff(PlacementOf(1, 10, GenreMale, allActive), Placement{}))
	assert.Equal(t, 2, anomalies)
	assert.Zero(t, l.total(LevelPool, 10))
	assert.Zero(t, l.total(LevelShed, 1))
}

func cloneLedger(l ledger) ledger {
	out := ledger{}
	for level, ids := range l {
		out[level] = map[int]map[Genre]int{}
		for id, genres := range ids {
			out[level][id] = map[Genre]int{}
			for g, n := range genres {
				out[level][id][g] = n
			}
		}
	}
	return out
}
