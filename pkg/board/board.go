// Package board generates and stores the quad map a game is played on.
package board

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/freeeve/realmwright/pkg/realm"
)

// Config controls board generation.
type Config struct {
	Width       int
	Height      int
	Seed        int64
	SeaLevel    float64
	MountainLvl float64
	RainLevel   float64 // rainfall above this is forest, below is desert
}

// DefaultConfig returns the standard 90x52 board.
func DefaultConfig(seed int64) Config {
	return Config{
		Width:       90,
		Height:      52,
		Seed:        seed,
		SeaLevel:    0.40,
		MountainLvl: 0.60,
		RainLevel:   0.50,
	}
}

// Board is a toroidal grid of quads. Lookups wrap in both directions.
type Board struct {
	Width  int
	Height int
	quads  [][]realm.Quad // [y][x]
}

// Generate builds a board from two noise layers: elevation decides sea and
// mountain, rainfall splits the remaining land into forest and desert.
func Generate(cfg Config) *Board {
	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	rainNoise := opensimplex.NewNormalized(cfg.Seed + 1)

	b := &Board{Width: cfg.Width, Height: cfg.Height, quads: make([][]realm.Quad, cfg.Height)}
	for y := 0; y < cfg.Height; y++ {
		row := make([]realm.Quad, cfg.Width)
		for x := 0; x < cfg.Width; x++ {
			elev := octaveNoise(elevNoise, float64(x), float64(y), 4, 0.08, 0.5)
			rain := octaveNoise(rainNoise, float64(x), float64(y), 3, 0.06, 0.5)
			row[x] = realm.Quad{
				Biome:    deriveBiome(elev, rain, cfg),
				Location: realm.Location{X: x, Y: y},
			}
		}
		b.quads[y] = row
	}
	return b
}

func deriveBiome(elev, rain float64, cfg Config) realm.Biome {
	switch {
	case elev < cfg.SeaLevel:
		return realm.Sea
	case elev > cfg.MountainLvl:
		return realm.Mountain
	case rain > cfg.RainLevel:
		return realm.Forest
	default:
		return realm.Desert
	}
}

// octaveNoise layers several frequencies of noise into a fractal sample.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// Wrap maps loc onto the board.
func (b *Board) Wrap(loc realm.Location) realm.Location {
	return realm.Location{X: mod(loc.X, b.Width), Y: mod(loc.Y, b.Height)}
}

// Distance is the Chebyshev distance between p and q measured the short way
// around the torus.
func (b *Board) Distance(p, q realm.Location) int {
	return max(torusDelta(p.X, q.X, b.Width), torusDelta(p.Y, q.Y, b.Height))
}

func torusDelta(a, c, n int) int {
	if n <= 0 {
		return abs(a - c)
	}
	d := mod(a-c, n)
	return min(d, n-d)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// QuadAt returns the quad at loc after wrapping.
func (b *Board) QuadAt(loc realm.Location) realm.Quad {
	w := b.Wrap(loc)
	return b.quads[w.Y][w.X]
}

// BiomeAt returns the biome at loc after wrapping.
func (b *Board) BiomeAt(loc realm.Location) realm.Biome {
	return b.QuadAt(loc).Biome
}

// Intner is the randomness RandomLand draws from.
type Intner interface {
	Intn(n int) int
}

// RandomLand picks a uniformly random non-sea quad. On an all-sea board it
// returns the origin.
func (b *Board) RandomLand(rng Intner) realm.Quad {
	var land []realm.Quad
	for _, row := range b.quads {
		for _, q := range row {
			if q.Biome != realm.Sea {
				land = append(land, q)
			}
		}
	}
	if len(land) == 0 {
		return b.quads[0][0]
	}
	return land[rng.Intn(len(land))]
}

// Counts returns how many quads of each biome the board has.
func (b *Board) Counts() map[realm.Biome]int {
	counts := make(map[realm.Biome]int)
	for _, row := range b.quads {
		for _, q := range row {
			counts[q.Biome]++
		}
	}
	return counts
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
