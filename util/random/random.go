package random

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator is the random source of exactly one simulation run.
// It is not safe for concurrent use, every run owns its own.
type Generator struct {
	seed         uint64
	uniform      *distuv.Uniform
	rnd          *rand.Rand
	uniformCount int
	intnCount    int
}

func New(seed uint64) *Generator {
	var source rand.Source = rand.NewSource(seed)
	return &Generator{
		seed:    seed,
		uniform: &distuv.Uniform{Min: 0, Max: 1, Src: source},
		rnd:     rand.New(source),
	}
}

func (g *Generator) Seed() uint64 {
	return g.seed
}

func (g *Generator) Uniform() float64 {
	g.uniformCount++
	return g.uniform.Rand()
}

func (g *Generator) Intn(n int) int {
	g.intnCount++
	return g.rnd.Intn(n)
}

// Counts indicates determinism, two runs with the same seed must report the same counts.
func (g *Generator) Counts() string {
	return fmt.Sprintf("seed: %v, uniform: %v, intn: %v", g.seed, g.uniformCount, g.intnCount)
}

// SeedFor derives the seed of a sub run from a base seed and its indices (splitmix64 mixing).
func SeedFor(base uint64, indices ...int) uint64 {
	seed := base
	for _, i := range indices {
		seed = mix(seed + 0x9e3779b97f4a7c15*uint64(i+1))
	}
	return seed
}

func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
