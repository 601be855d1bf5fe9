// Package model defines the collaboration network graph: people as nodes,
// shared-team collaborations as weighted links. The graph is loaded once at
// startup and is immutable afterwards except for the simulation-owned
// position, velocity, and pin fields on each node.
package model

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Archetype values recognised by the visual encoding. Anything else
// (including an empty string) falls back to ArchetypeUnknown.
const (
	ArchetypeBuilder      = "Builder"
	ArchetypeDesigner     = "Designer"
	ArchetypeResearcher   = "Researcher"
	ArchetypeCommunicator = "Communicator"
	ArchetypeStrategist   = "Strategist"
	ArchetypeUnknown      = "Unknown"
)

// KnownArchetypes lists the fixed archetype set, excluding the fallback.
var KnownArchetypes = []string{
	ArchetypeBuilder,
	ArchetypeDesigner,
	ArchetypeResearcher,
	ArchetypeCommunicator,
	ArchetypeStrategist,
}

// ErrUnknownNode is returned when a link references a node id that is not in
// the graph. Dangling references are a fatal input error, never dropped.
var ErrUnknownNode = errors.New("link references unknown node")

// Node is one person in the collaboration network.
//
// The payload carries at most the first five capabilities while
// CapabilityCount is the person's full count, so CapabilityCount may exceed
// len(Capabilities).
type Node struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Department      string   `json:"department"`
	Archetype       string   `json:"archetype"`
	Capabilities    []string `json:"capabilities"`
	CapabilityCount int      `json:"capability_count"`
	CollabCount     int      `json:"collab_count"`

	// Simulation-owned. X/Y and VX/VY are written by the layout engine on
	// every step; FX/FY are set only while the node is pinned by a drag.
	X  float64  `json:"-"`
	Y  float64  `json:"-"`
	VX float64  `json:"-"`
	VY float64  `json:"-"`
	FX *float64 `json:"-"`
	FY *float64 `json:"-"`
}

// FirstName returns the first whitespace-separated token of the node's name,
// used as the on-canvas label.
func (n *Node) FirstName() string {
	fields := strings.Fields(n.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Pinned reports whether the node's position is currently fixed input to the
// simulation rather than simulated output.
func (n *Node) Pinned() bool {
	return n.FX != nil && n.FY != nil
}

// Pin fixes the node at (x, y) until Unpin is called.
func (n *Node) Pin(x, y float64) {
	n.FX = &x
	n.FY = &y
}

// Unpin releases a pinned node back to free simulation.
func (n *Node) Unpin() {
	n.FX = nil
	n.FY = nil
}

// Link is an undirected collaboration edge between two people. SourceID and
// TargetID are the wire representation; Source and Target are resolved once
// by Graph.resolve and stay consistent with the ids for the link's lifetime.
type Link struct {
	SourceID int     `json:"source"`
	TargetID int     `json:"target"`
	Weight   float64 `json:"weight"`
	TeamName string  `json:"team_name,omitempty"`

	Source *Node `json:"-"`
	Target *Node `json:"-"`
}

// Graph holds the ordered node and link lists of one collaboration network.
type Graph struct {
	Nodes []*Node `json:"nodes"`
	Links []*Link `json:"links"`

	byID map[int]*Node
}

// Decode reads a graph JSON payload, resolves link endpoints, and validates
// referential integrity. A link whose source or target does not match any
// node id fails with ErrUnknownNode.
func Decode(r io.Reader) (*Graph, error) {
	var g Graph
	dec := json.NewDecoder(r)
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("decode graph payload: %w", err)
	}
	if err := g.resolve(); err != nil {
		return nil, err
	}
	return &g, nil
}

// NewGraph builds a graph from already-constructed nodes and links, resolving
// link endpoints. Used by non-JSON sources (SQLite) and tests.
func NewGraph(nodes []*Node, links []*Link) (*Graph, error) {
	g := &Graph{Nodes: nodes, Links: links}
	if err := g.resolve(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) resolve() error {
	g.byID = make(map[int]*Node, len(g.Nodes))
	for _, n := range g.Nodes {
		g.byID[n.ID] = n
	}
	for i, l := range g.Links {
		src, ok := g.byID[l.SourceID]
		if !ok {
			return fmt.Errorf("link %d: source %d: %w", i, l.SourceID, ErrUnknownNode)
		}
		dst, ok := g.byID[l.TargetID]
		if !ok {
			return fmt.Errorf("link %d: target %d: %w", i, l.TargetID, ErrUnknownNode)
		}
		l.Source = src
		l.Target = dst
	}
	return nil
}

// NodeByID returns the node with the given id, or nil.
func (g *Graph) NodeByID(id int) *Node {
	return g.byID[id]
}

// Empty reports whether the graph has no nodes. An empty graph is not an
// error; callers render a placeholder instead of a scene.
func (g *Graph) Empty() bool {
	return len(g.Nodes) == 0
}

// Departments returns the deduplicated, sorted department values.
func (g *Graph) Departments() []string {
	return distinct(g.Nodes, func(n *Node) string { return n.Department })
}

// Archetypes returns the deduplicated, sorted archetype values as loaded,
// including any unrecognised ones (the encoding maps those to the fallback
// color).
func (g *Graph) Archetypes() []string {
	return distinct(g.Nodes, func(n *Node) string { return n.Archetype })
}

func distinct(nodes []*Node, key func(*Node) string) []string {
	seen := make(map[string]bool, len(nodes))
	var out []string
	for _, n := range nodes {
		k := key(n)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
