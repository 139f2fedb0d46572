package config

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultAPIBindAddress is used by "serve" when neither the flag nor the config sets one.
	DefaultAPIBindAddress = "127.0.0.1:12121"
	// DefaultDNSTimeoutSeconds bounds a single hostname resolution.
	DefaultDNSTimeoutSeconds = 3
	// DefaultOutputFormat renders one lookup result per line.
	DefaultOutputFormat = "{{address}} via {{prefix}} ({{route}})"
)

type Config struct {
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Sources are route sources merged into one table in the order given. A later source overrides an earlier one for the same prefix.
	Sources []*SourceConfig `toml:"source,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// APIBindAddress is the host:port the HTTP API listens on (default: 127.0.0.1:12121).
	APIBindAddress string `toml:"api_bind_address" json:"api_bind_address" validate:"hostport_or_empty"`
	// DNSUpstream is the host:port of the DNS server used to resolve hostnames given to "lookup" (empty = hostnames are rejected).
	DNSUpstream string `toml:"dns_upstream" json:"dns_upstream" validate:"hostport_or_empty"`
	// DNSTimeoutSeconds is the timeout for one DNS query (default: 3).
	DNSTimeoutSeconds int `toml:"dns_timeout_seconds" json:"dns_timeout_seconds" validate:"gte=0,lte=60"`
	// OutputFormat is the template for CLI lookup/route lines. Available variables: {{address}}, {{prefix}}, {{route}}, {{gateway}}, {{interface}}, {{metric}}, {{source}}, {{bits}}.
	OutputFormat string `toml:"output_format" json:"output_format"`
}

type SourceConfig struct {
	// SourceName is the name of the source.
	SourceName string `toml:"source_name" json:"source_name" validate:"required,source_name"`
	// File is a route file: .lst/.txt (one prefix per line), .toml or .yaml/.yml. Relative paths are resolved against the config directory.
	File string `toml:"file,omitempty" json:"file,omitempty"`
	// KernelTable imports a one-time snapshot of the given kernel routing table (e.g. 254 for main).
	KernelTable int `toml:"kernel_table,omitempty" json:"kernel_table,omitempty" validate:"gte=0"`
	// Routes are inline route entries.
	Routes []*RouteConfig `toml:"route,omitempty" json:"route,omitempty"`
}

type RouteConfig struct {
	// Prefix is the destination block in CIDR notation. Host bits are cleared.
	Prefix string `toml:"prefix" json:"prefix" yaml:"prefix" validate:"required,ipv4_cidr"`
	// Name identifies the route in lookup output (default: the prefix).
	Name string `toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	// Gateway is the IPv4 next hop (optional).
	Gateway string `toml:"gateway,omitempty" json:"gateway,omitempty" yaml:"gateway,omitempty" validate:"ipv4_or_empty"`
	// Interface is the egress interface name (optional).
	Interface string `toml:"interface,omitempty" json:"interface,omitempty" yaml:"interface,omitempty"`
	// Metric is informational only; it never overrides the longest match.
	Metric int `toml:"metric,omitempty" json:"metric,omitempty" yaml:"metric,omitempty" validate:"gte=0"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (g *GeneralConfig) GetAPIBindAddress() string {
	if g == nil || g.APIBindAddress == "" {
		return DefaultAPIBindAddress
	}
	return g.APIBindAddress
}

func (g *GeneralConfig) GetDNSTimeoutSeconds() int {
	if g == nil || g.DNSTimeoutSeconds == 0 {
		return DefaultDNSTimeoutSeconds
	}
	return g.DNSTimeoutSeconds
}

func (g *GeneralConfig) GetOutputFormat() string {
	if g == nil || g.OutputFormat == "" {
		return DefaultOutputFormat
	}
	return g.OutputFormat
}

func (src *SourceConfig) Type() string {
	if src.File != "" {
		return "file"
	} else if src.KernelTable != 0 {
		return "kernel"
	} else {
		return "inline"
	}
}

func (src *SourceConfig) Name() string {
	return src.SourceName
}

func (src *SourceConfig) GetAbsolutePath(cfg *Config) (string, error) {
	if src.File == "" {
		return "", fmt.Errorf("source %s is not a file", src.SourceName)
	}
	return resolvePath(src.File, cfg.GetConfigDir()), nil
}

// resolvePath returns path if it is absolute, otherwise joins it with baseDir.
func resolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
