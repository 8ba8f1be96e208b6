package engine

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
)

// newRNG derives the engine's deterministic random source from the
// artifact's summary id, so repeated runs over the same artifact produce
// identical output.
func newRNG(summaryID int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(summaryID), 0))
}

// rngReader adapts a rand.Rand to io.Reader for uuid generation.
type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// newItemID yields a UUID drawn from the seeded source; stable item ids
// keep the whole document reproducible.
func newItemID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rngReader{rng})
	if err != nil {
		// The reader never fails; this is unreachable.
		panic(err)
	}
	return id.String()
}

// shuffle permutes a string slice in place with the seeded source.
func shuffle(rng *rand.Rand, items []string) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
