package routes

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/maksimkurb/keen-lpm/src/internal/config"
	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
)

// routeFile is the layout of .toml ([[route]]) and .yaml (routes:) route files.
type routeFile struct {
	Routes []*config.RouteConfig `toml:"route" yaml:"routes"`
}

// readFile loads routes from path, picking the format from the extension.
// Plain lists skip bad lines; structured files fail on the first bad entry.
func readFile(path, source string) (routes []*Route, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read route file '%s': %w", path, err)
	}
	defer closeOrWarn(f)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var rf routeFile
		if err := toml.NewDecoder(f).Decode(&rf); err != nil {
			return nil, 0, fmt.Errorf("failed to parse route file '%s': %w", path, err)
		}
		routes, err = convertAll(rf.Routes, source, path)
		return routes, 0, err
	case ".yaml", ".yml":
		var rf routeFile
		if err := yaml.NewDecoder(f).Decode(&rf); err != nil && err != io.EOF {
			return nil, 0, fmt.Errorf("failed to parse route file '%s': %w", path, err)
		}
		routes, err = convertAll(rf.Routes, source, path)
		return routes, 0, err
	default:
		return readList(f, source)
	}
}

func convertAll(entries []*config.RouteConfig, source, path string) ([]*Route, error) {
	routes := make([]*Route, 0, len(entries))
	for i, rc := range entries {
		r, err := FromConfig(rc, source)
		if err != nil {
			return nil, fmt.Errorf("route file '%s' entry %d: %w", path, i, err)
		}
		routes = append(routes, r)
	}
	return routes, nil
}

// readList reads one "prefix [name]" entry per line. A bare address becomes
// a /32. Blank lines and '#' comments are ignored.
func readList(r io.Reader, source string) (routes []*Route, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		parsed, err := ipv4.Parse(fields[0])
		if err != nil {
			log.Warnf("[%s] line %d: %v, skipping", source, lineNo, err)
			skipped++
			continue
		}

		route := &Route{Prefix: parsed.Prefix(), Source: source}
		if len(fields) > 1 {
			route.Name = strings.Join(fields[1:], " ")
		} else {
			route.Name = route.Prefix.String()
		}
		routes = append(routes, route)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read route list: %w", err)
	}
	return routes, skipped, nil
}

func closeOrWarn(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warnf("Failed to close: %v", err)
	}
}
