package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
)

// rankTableFile is the YAML document shape for a custom rank table.
type rankTableFile struct {
	Bands []rankBandEntry `yaml:"bands"`
}

type rankBandEntry struct {
	Rank  string `yaml:"rank"`
	Label string `yaml:"label"`
	Min   int    `yaml:"min"`
	// Max omitted or negative marks the open-ended top band.
	Max *int `yaml:"max,omitempty"`
}

// LoadRankTable reads a custom rank table from a YAML file. An empty
// path returns the built-in default table.
func LoadRankTable(path string) (entities.RankTable, error) {
	if path == "" {
		return entities.DefaultRankTable(), nil
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rank table file %s", path)
	}

	var file rankTableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "invalid rank table file %s", path)
	}
	if len(file.Bands) == 0 {
		return nil, errors.DataLossf("rank table file %s defines no bands", path)
	}

	table := make(entities.RankTable, 0, len(file.Bands))
	for i, entry := range file.Bands {
		if entry.Label == "" {
			return nil, errors.DataLossf("rank table file %s: band %d has no label", path, i)
		}
		band := entities.RankBand{
			Rank:  entry.Rank,
			Label: entry.Label,
			Min:   entry.Min,
		}
		if entry.Max != nil && *entry.Max >= 0 {
			band.Max = entry.Max
		}
		table = append(table, band)
	}

	return table, nil
}
