package source

import (
	"fmt"
	"math/rand"

	"github.com/liamcoop/sift"
)

var (
	generatedNames = []string{
		"Kate Müller", "Wilson", "Agent Smith", "Bruce Willis",
		"Trinity", "Morpheus", "Niobe", "Dozer", "Tank", "Switch",
	}
	generatedOccupations = []string{
		"Astronaut", "Ball", "Courier", "Baker", "Pilot", "Librarian",
	}
	generatedRoles = []string{
		"Manager", "Anti-virus engineer", "Operator", "Captain", "Gatekeeper",
	}
)

// Generator produces a pseudorandom roster. The same seed and count
// always yield the same records, so generated runs are reproducible.
type Generator struct {
	count int
	seed  int64
}

// NewGenerator creates a generator for count records from seed. count
// must be non-negative.
func NewGenerator(count int, seed int64) (*Generator, error) {
	if count < 0 {
		return nil, fmt.Errorf("generator count must be non-negative, got %d", count)
	}
	return &Generator{count: count, seed: seed}, nil
}

// Records generates the roster. The RNG is reseeded on every call, so
// repeated calls return identical collections.
func (g *Generator) Records() ([]sift.Record, error) {
	rng := rand.New(rand.NewSource(g.seed))

	records := make([]sift.Record, 0, g.count)
	for i := 0; i < g.count; i++ {
		name := generatedNames[rng.Intn(len(generatedNames))]
		age := rng.Intn(80)
		if rng.Intn(2) == 0 {
			records = append(records, sift.User{
				Name:       name,
				Age:        age,
				Occupation: generatedOccupations[rng.Intn(len(generatedOccupations))],
			})
		} else {
			records = append(records, sift.Admin{
				Name: name,
				Age:  age,
				Role: generatedRoles[rng.Intn(len(generatedRoles))],
			})
		}
	}
	return records, nil
}
