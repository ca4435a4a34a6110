package models

// CountState says whether an animal contributes to a container's population.
type CountState int

const (
	Uncounted CountState = iota
	CountedActive
	CountedInactive
)

func (s CountState) Counted() bool { return s != Uncounted }

func (s CountState) String() string {
	switch s {
	case CountedActive:
		return "counted_active"
	case CountedInactive:
		return "counted_inactive"
	default:
		return "uncounted"
	}
}

// Flags is the activation triple of an animal and its containers plus
// whether the animal is live (no death and no saca).
type Flags struct {
	ShedActive bool
	PoolActive bool
	CuyActive  bool
	Live       bool
}

// PoolCountState: an active pool counts its active live animals, an inactive
// pool keeps every live animal as a frozen snapshot.
func PoolCountState(f Flags) CountState {
	if !f.Live {
		return Uncounted
	}
	if !f.PoolActive {
		return CountedInactive
	}
	if f.CuyActive {
		return CountedActive
	}
	return Uncounted
}

// ShedCountState: an active shed counts live animals that are active in an
// active pool, an inactive shed keeps every live animal.
func ShedCountState(f Flags) CountState {
	if !f.Live {
		return Uncounted
	}
	if !f.ShedActive {
		return CountedInactive
	}
	if f.PoolActive && f.CuyActive {
		return CountedActive
	}
	return Uncounted
}

// Placement is where an animal is counted, if anywhere.
type Placement struct {
	ShedId int
	PoolId int
	Genre  Genre
	InPool bool
	InShed bool
}

func PlacementOf(shedId, poolId int, genre Genre, f Flags) Placement {
	return Placement{
		ShedId: shedId,
		PoolId: poolId,
		Genre:  genre,
		InPool: PoolCountState(f).Counted(),
		InShed: ShedCountState(f).Counted(),
	}
}

type CounterLevel string

const (
	LevelPool CounterLevel = "pool"
	LevelShed CounterLevel = "shed"
)

type CounterDelta struct {
	Level CounterLevel
	Id    int
	Genre Genre
	Delta int
}

// Diff returns the counter moves that take an animal from before to after:
// -1 on the old placement and +1 on the new one whenever they differ.
func Diff(before, after Placement) []CounterDelta {
	var deltas []CounterDelta

	samePool := before.PoolId == after.PoolId && before.Genre == after.Genre
	if before.InPool && !(after.InPool && samePool) {
		deltas = append(deltas, CounterDelta{Level: LevelPool, Id: before.PoolId, Genre: before.Genre, Delta: -1})
	}
	if after.InPool && !(before.InPool && samePool) {
		deltas = append(deltas, CounterDelta{Level: LevelPool, Id: after.PoolId, Genre: after.Genre, Delta: 1})
	}

	sameShed := before.ShedId == after.ShedId && before.Genre == after.Genre
	if before.InShed && !(after.InShed && sameShed) {
		deltas = append(deltas, CounterDelta{Level: LevelShed, Id: before.ShedId, Genre: before.Genre, Delta: -1})
	}
	if after.InShed && !(before.InShed && sameShed) {
		deltas = append(deltas, CounterDelta{Level: LevelShed, Id: after.ShedId, Genre: after.Genre, Delta: 1})
	}
	return deltas
}
