package routes

import (
	"context"
	"fmt"

	"github.com/maksimkurb/keen-lpm/src/internal/config"
	"github.com/maksimkurb/keen-lpm/src/internal/errors"
	"github.com/maksimkurb/keen-lpm/src/internal/lpm"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
)

// Table is the lookup table built from all configured sources.
type Table = lpm.Table[*Route]

// SourceStats summarizes what one source contributed.
type SourceStats struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Routes  int    `json:"routes"`
	Skipped int    `json:"skipped"`
}

// Loader builds a Table from a validated configuration.
type Loader struct {
	cfg    *config.Config
	kernel RouteLister
}

// NewLoader creates a loader. kernel may be nil when no source reads a
// kernel table.
func NewLoader(cfg *config.Config, kernel RouteLister) *Loader {
	return &Loader{cfg: cfg, kernel: kernel}
}

// Load reads every source in order and inserts its routes. Identical prefixes
// from a later source replace earlier ones; the table itself always prefers
// the longest match at lookup time.
func (l *Loader) Load(ctx context.Context) (*Table, []SourceStats, error) {
	tbl := &Table{}
	stats := make([]SourceStats, 0, len(l.cfg.Sources))

	for _, src := range l.cfg.Sources {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		routes, skipped, err := l.readSource(src)
		if err != nil {
			return nil, nil, errors.NewRouteError(fmt.Sprintf("failed to load source %s", src.SourceName), err)
		}

		replaced := 0
		for _, r := range routes {
			if prev, ok := tbl.Get(r.Prefix); ok {
				log.Debugf("[%s] %s replaces %s from %s", src.SourceName, r.Prefix, prev.Name, prev.Source)
				replaced++
			}
			tbl.Insert(r.Prefix, r)
		}

		log.Infof("Loaded %d routes from source %s (%s), %d skipped, %d replaced", len(routes), src.SourceName, src.Type(), skipped, replaced)
		stats = append(stats, SourceStats{
			Name:    src.SourceName,
			Type:    src.Type(),
			Routes:  len(routes),
			Skipped: skipped,
		})
	}

	return tbl, stats, nil
}

func (l *Loader) readSource(src *config.SourceConfig) ([]*Route, int, error) {
	switch src.Type() {
	case "file":
		path, err := src.GetAbsolutePath(l.cfg)
		if err != nil {
			return nil, 0, err
		}
		return readFile(path, src.SourceName)
	case "kernel":
		if l.kernel == nil {
			return nil, 0, fmt.Errorf("kernel routes are not available")
		}
		kernelRoutes, err := l.kernel.ListRoutes(src.KernelTable)
		if err != nil {
			return nil, 0, err
		}
		routes := make([]*Route, 0, len(kernelRoutes))
		for _, kr := range kernelRoutes {
			routes = append(routes, &Route{
				Prefix:    kr.Dst,
				Name:      kr.Dst.String(),
				Gateway:   kr.Gateway,
				Interface: kr.Interface,
				Metric:    kr.Metric,
				Source:    src.SourceName,
			})
		}
		return routes, 0, nil
	default:
		routes, err := convertAll(src.Routes, src.SourceName, "inline")
		return routes, 0, err
	}
}
