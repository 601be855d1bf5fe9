// Package testutil provides deterministic collaboration-network fixtures for
// tests and benchmarks. All generators are seeded so a given configuration
// always produces the same graph.
package testutil

import (
	"fmt"
	"math/rand"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

var (
	departments = []string{"Engineering", "Design", "Research", "Operations", "Marketing"}
	archetypes  = []string{"Builder", "Designer", "Researcher", "Communicator", "Strategist"}
	firstNames  = []string{"Ada", "Grace", "Alan", "Katherine", "Margaret", "Edsger", "Barbara", "Donald", "Radia", "Linus"}
	lastNames   = []string{"Lovelace", "Hopper", "Turing", "Johnson", "Hamilton", "Dijkstra", "Liskov", "Knuth", "Perlman", "Torvalds"}
	skills      = []string{"Go", "Python", "SQL", "Figma", "Statistics", "Writing", "Kubernetes", "React", "Hiring", "Strategy"}
	teams       = []string{"Compilers", "Platform", "Growth", "Insights", "Atlas", "Nimbus"}
)

// GeneratorConfig controls fixture generation.
type GeneratorConfig struct {
	Seed        int64
	Nodes       int
	EdgeDensity float64 // probability of a link between any node pair
	MaxWeight   int     // link weights drawn from [1, MaxWeight]
}

// GenerateGraph builds a random collaboration network. Collaboration counts
// are derived from the generated links so the encoding's inputs stay
// consistent with the topology.
func GenerateGraph(cfg GeneratorConfig) (*model.Graph, error) {
	if cfg.Nodes <= 0 {
		return nil, fmt.Errorf("node count must be positive, got %d", cfg.Nodes)
	}
	if cfg.MaxWeight <= 0 {
		cfg.MaxWeight = 5
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	nodes := make([]*model.Node, cfg.Nodes)
	for i := range nodes {
		capCount := rng.Intn(8)
		listed := capCount
		if listed > 5 {
			listed = 5
		}
		caps := make([]string, listed)
		for j := range caps {
			caps[j] = skills[rng.Intn(len(skills))]
		}
		nodes[i] = &model.Node{
			ID:              i + 1,
			Name:            fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]),
			Department:      departments[rng.Intn(len(departments))],
			Archetype:       archetypes[rng.Intn(len(archetypes))],
			Capabilities:    caps,
			CapabilityCount: capCount,
		}
	}

	var links []*model.Link
	for i := 0; i < cfg.Nodes; i++ {
		for j := i + 1; j < cfg.Nodes; j++ {
			if rng.Float64() >= cfg.EdgeDensity {
				continue
			}
			links = append(links, &model.Link{
				SourceID: nodes[i].ID,
				TargetID: nodes[j].ID,
				Weight:   float64(1 + rng.Intn(cfg.MaxWeight)),
				TeamName: teams[rng.Intn(len(teams))],
			})
			nodes[i].CollabCount++
			nodes[j].CollabCount++
		}
	}

	return model.NewGraph(nodes, links)
}

// StarGraph builds a hub with n spokes, the pathological case for the
// repulsion and collision forces.
func StarGraph(n int) (*model.Graph, error) {
	nodes := make([]*model.Node, n+1)
	nodes[0] = &model.Node{ID: 1, Name: "Hub Person", Department: "Engineering", Archetype: "Builder", CollabCount: n}
	links := make([]*model.Link, n)
	for i := 1; i <= n; i++ {
		nodes[i] = &model.Node{
			ID:          i + 1,
			Name:        fmt.Sprintf("Spoke %d", i),
			Department:  departments[i%len(departments)],
			Archetype:   archetypes[i%len(archetypes)],
			CollabCount: 1,
		}
		links[i-1] = &model.Link{SourceID: 1, TargetID: i + 1, Weight: 1}
	}
	return model.NewGraph(nodes, links)
}
