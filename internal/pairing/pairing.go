package pairing

import (
	"math/rand"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
)

// Shuffler permutes a pool in place.
type Shuffler func(pool []deck.PlayerStat)

// RandomShuffle is a uniform shuffle backed by math/rand.
func RandomShuffle(pool []deck.PlayerStat) {
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

// Identity leaves the pool untouched.
func Identity() Shuffler {
	return func([]deck.PlayerStat) {}
}

// Engine turns a player pool into head-to-head pairs.
type Engine struct {
	shuffle Shuffler
}

// New returns an Engine using shuffle; nil uses RandomShuffle.
func New(shuffle Shuffler) *Engine {
	if shuffle == nil {
		shuffle = RandomShuffle
	}
	return &Engine{shuffle: shuffle}
}

// Pair shuffles a copy of pool and pairs consecutive players. Each pair's ID
// is the index of its left player. An odd player out is dropped.
func (e *Engine) Pair(pool []deck.PlayerStat) []deck.Pair {
	shuffled := make([]deck.PlayerStat, len(pool))
	copy(shuffled, pool)
	e.shuffle(shuffled)

	pairs := make([]deck.Pair, 0, len(shuffled)/2)
	for i := 0; i+1 < len(shuffled); i += 2 {
		pairs = append(pairs, deck.Pair{
			ID:    i,
			Left:  shuffled[i],
			Right: shuffled[i+1],
		})
	}
	return pairs
}
