package invaders

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// Snapshot captures the observable game state for determinism checks.
type Snapshot struct {
	Tick      int
	Score     int
	Lives     int
	Wave      int
	ShipX     int
	Origin    core.Point
	Dir       int
	Aliens    int
	Shelters  int
	ShotsHash uint64
	GameOver  bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	h := fnv.New64a()
	var buf [8]byte
	for _, shots := range [][]core.Point{g.playerShots, g.enemyShots} {
		for _, s := range shots {
			binary.LittleEndian.PutUint32(buf[:4], uint32(s.X))
			binary.LittleEndian.PutUint32(buf[4:], uint32(s.Y))
			h.Write(buf[:])
		}
		h.Write([]byte{0xff})
	}
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Lives:     g.lives,
		Wave:      g.wave,
		ShipX:     g.shipX,
		Origin:    g.formation.Origin,
		Dir:       g.formation.Dir,
		Aliens:    g.formation.Count(),
		Shelters:  len(g.shelters),
		ShotsHash: h.Sum64(),
		GameOver:  g.gameOver,
	}
}
