package datasource

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/vanderheijden86/nestviz/pkg/debug"
	"github.com/vanderheijden86/nestviz/pkg/model"
)

// fetchTimeout bounds the single HTTP fetch.
const fetchTimeout = 30 * time.Second

// Load fetches and decodes the graph from the source. One attempt only; the
// caller reports the error and exits rather than retrying.
func Load(ctx context.Context, src Source) (*model.Graph, error) {
	debug.Log("datasource: loading %s", src)
	switch src.Kind {
	case KindHTTP:
		return loadHTTP(ctx, src.Location)
	case KindFile:
		return loadFile(src.Location)
	case KindSQLite:
		return loadSQLite(src.Location)
	default:
		return nil, fmt.Errorf("unknown source kind %q", src.Kind)
	}
}

func loadHTTP(ctx context.Context, url string) (*model.Graph, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	g, err := model.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse response from %s: %w", url, err)
	}
	return g, nil
}

func loadFile(path string) (*model.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := model.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}
