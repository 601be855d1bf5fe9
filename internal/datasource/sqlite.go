package datasource

import (
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

// loadSQLite reads the people and collaborations tables, which mirror the
// JSON contract field for field. The capabilities column holds a JSON array
// of strings.
func loadSQLite(path string) (*model.Graph, error) {
	// Read-only open; the viewer never writes.
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	defer db.Close()

	nodes, err := loadPeople(db)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	links, err := loadCollaborations(db)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return model.NewGraph(nodes, links)
}

func loadPeople(db *sql.DB) ([]*model.Node, error) {
	rows, err := db.Query(`
		SELECT id, name, department, archetype, capabilities,
		       capability_count, collab_count
		FROM people
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	var nodes []*model.Node
	for rows.Next() {
		var n model.Node
		var caps sql.NullString
		var department, archetype sql.NullString
		if err := rows.Scan(&n.ID, &n.Name, &department, &archetype,
			&caps, &n.CapabilityCount, &n.CollabCount); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		n.Department = department.String
		n.Archetype = archetype.String
		if caps.Valid && caps.String != "" {
			if err := json.Unmarshal([]byte(caps.String), &n.Capabilities); err != nil {
				return nil, fmt.Errorf("person %d: parse capabilities: %w", n.ID, err)
			}
		}
		nodes = append(nodes, &n)
	}
	return nodes, rows.Err()
}

func loadCollaborations(db *sql.DB) ([]*model.Link, error) {
	rows, err := db.Query(`
		SELECT source, target, weight, COALESCE(team_name, '')
		FROM collaborations`)
	if err != nil {
		return nil, fmt.Errorf("query collaborations: %w", err)
	}
	defer rows.Close()

	var links []*model.Link
	for rows.Next() {
		var l model.Link
		if err := rows.Scan(&l.SourceID, &l.TargetID, &l.Weight, &l.TeamName); err != nil {
			return nil, fmt.Errorf("scan collaboration: %w", err)
		}
		links = append(links, &l)
	}
	return links, rows.Err()
}
