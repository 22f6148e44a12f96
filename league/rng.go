package league

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
)

// RNG subsystem labels. Each labeled stream draws from an isolated,
// deterministically derived source so that consuming randomness in one
// subsystem never perturbs another.
const (
	StreamGenerator   = "generator"
	StreamSchedule    = "schedule"
	StreamGame        = "game"
	StreamLottery     = "lottery"
	StreamDraftAI     = "draft_ai"
	StreamDevelopment = "development"
)

// StreamSeed derives a stream seed from the league master seed and a set of
// label parts (subsystem name plus identifying context such as a game ID or
// season year). The same master seed and parts always derive the same
// stream seed, which keeps every subsystem reproducible across save/load
// without persisting generator state.
func StreamSeed(master int64, parts ...string) int64 {
	return master ^ fnv1a64(strings.Join(parts, "/"))
}

// Stream returns a rand.Rand seeded by StreamSeed. Callers hold it for the
// duration of one bounded operation (one game, one lottery, one pick) and
// never share it across goroutines.
func Stream(master int64, parts ...string) *rand.Rand {
	return rand.New(rand.NewSource(StreamSeed(master, parts...)))
}

// yearPart formats a season year for use as a stream label part.
func yearPart(year int) string {
	return fmt.Sprintf("y%d", year)
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
