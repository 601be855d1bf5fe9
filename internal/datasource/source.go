// Package datasource loads the collaboration graph from one of three source
// kinds: an HTTP endpoint serving the graph JSON, a local JSON file, or a
// SQLite database. Exactly one source is selected per run and fetched exactly
// once; a failed fetch is fatal to the caller, never retried.
package datasource

import "fmt"

// Kind identifies the type of data source.
type Kind string

const (
	// KindHTTP fetches graph JSON from a URL.
	KindHTTP Kind = "http"
	// KindFile reads graph JSON from a local file.
	KindFile Kind = "file"
	// KindSQLite reads the people and collaborations tables from a database.
	KindSQLite Kind = "sqlite"
)

// Source is one selected graph source.
type Source struct {
	Kind Kind
	// Location is the URL or filesystem path, per Kind.
	Location string
}

// String returns a human-readable description for logs and errors.
func (s Source) String() string {
	return fmt.Sprintf("%s source %s", s.Kind, s.Location)
}

// Watchable reports whether the source is a local file that can carry a
// staleness notice. HTTP sources are fetched once and never watched.
func (s Source) Watchable() bool {
	return s.Kind == KindFile || s.Kind == KindSQLite
}

// Select resolves the command-line source flags to exactly one source.
// Passing more than one, or none, is a usage error.
func Select(url, file, db string) (Source, error) {
	var sources []Source
	if url != "" {
		sources = append(sources, Source{Kind: KindHTTP, Location: url})
	}
	if file != "" {
		sources = append(sources, Source{Kind: KindFile, Location: file})
	}
	if db != "" {
		sources = append(sources, Source{Kind: KindSQLite, Location: db})
	}
	switch len(sources) {
	case 0:
		return Source{}, fmt.Errorf("no data source given (want --url, --file, or --db)")
	case 1:
		return sources[0], nil
	default:
		return Source{}, fmt.Errorf("multiple data sources given, want exactly one")
	}
}
