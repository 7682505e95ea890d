// Package labels resolves trait codes to display names from YAML tables
package labels

import (
	_ "embed"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
)

//go:embed tables.yaml
var defaultTables []byte

// Config configures the label client
type Config struct {
	// Path to a YAML table file (optional, defaults to the embedded tables)
	Path string
}

// Client looks labels up in in-memory tables. It is read-only after New and
// safe for concurrent use.
type Client struct {
	tables map[ipc.Category]map[int]string
}

// New loads label tables from cfg.Path or the embedded defaults
func New(cfg *Config) (*Client, error) {
	data := defaultTables
	if cfg != nil && cfg.Path != "" {
		raw, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read label tables %s", cfg.Path)
		}
		data = raw
	}

	return Parse(data)
}

// Parse builds a client from YAML table data
func Parse(data []byte) (*Client, error) {
	var raw map[string]map[int]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse label tables")
	}

	known := make(map[ipc.Category]bool, len(ipc.TraitCategories))
	for _, category := range ipc.TraitCategories {
		known[category] = true
	}

	tables := make(map[ipc.Category]map[int]string, len(raw))
	var unknown []string
	for name, codes := range raw {
		category := ipc.Category(name)
		if !known[category] {
			unknown = append(unknown, name)
			continue
		}
		tables[category] = codes
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.InvalidArgumentf("unknown label categories: %v", unknown)
	}

	return &Client{tables: tables}, nil
}

// Lookup implements metadata.LabelLookup
func (c *Client) Lookup(category ipc.Category, code int) (string, bool) {
	label, ok := c.tables[category][code]
	if !ok || label == "" {
		return "", false
	}
	return label, true
}

// Size returns the number of codes known for category
func (c *Client) Size(category ipc.Category) int {
	return len(c.tables[category])
}

