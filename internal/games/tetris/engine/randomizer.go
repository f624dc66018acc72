package engine

import (
	"fmt"
	"math/rand"
)

// Randomizer supplies the type of each spawned piece.
type Randomizer interface {
	Next() PieceType
}

// RandomizerKind names a randomizer implementation in configuration.
type RandomizerKind string

const (
	// RandomizerUniform draws each piece independently with equal probability.
	RandomizerUniform RandomizerKind = "uniform"
	// RandomizerBag deals shuffled bags holding one of each piece.
	RandomizerBag RandomizerKind = "bag"
)

// NewRandomizer builds a seeded randomizer of the given kind.
// An empty kind selects RandomizerUniform.
func NewRandomizer(kind RandomizerKind, seed int64) (Randomizer, error) {
	switch kind {
	case "", RandomizerUniform:
		return NewUniform(seed), nil
	case RandomizerBag:
		return NewBag(seed), nil
	default:
		return nil, fmt.Errorf("engine: unknown randomizer %q", kind)
	}
}

// Uniform picks each piece uniformly at random with no memory of past draws.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform creates a uniform randomizer with a deterministic seed.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next piece type.
func (u *Uniform) Next() PieceType {
	return PieceType(u.rng.Intn(PieceCount))
}

// Bag deals all seven pieces in a random order before reshuffling.
type Bag struct {
	rng  *rand.Rand
	bag  [PieceCount]PieceType
	next int
}

// NewBag creates a 7-bag randomizer with a deterministic seed.
func NewBag(seed int64) *Bag {
	b := &Bag{rng: rand.New(rand.NewSource(seed))}
	b.refill()
	return b
}

// Next returns the next piece from the current bag.
func (b *Bag) Next() PieceType {
	if b.next >= PieceCount {
		b.refill()
	}
	t := b.bag[b.next]
	b.next++
	return t
}

func (b *Bag) refill() {
	b.bag = AllPieces
	b.rng.Shuffle(PieceCount, func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})
	b.next = 0
}

// Sequence replays a fixed list of pieces, starting over at the end.
// Used for scripted boards and deterministic tests.
type Sequence struct {
	types []PieceType
	next  int
}

// NewSequence creates a randomizer cycling through types.
// With no types it always returns PieceI.
func NewSequence(types ...PieceType) *Sequence {
	return &Sequence{types: types}
}

// Next returns the next piece of the sequence.
func (s *Sequence) Next() PieceType {
	if len(s.types) == 0 {
		return PieceI
	}
	t := s.types[s.next%len(s.types)]
	s.next++
	return t
}
