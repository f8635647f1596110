package facet

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/arloliu/geocluster/cluster"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
)

// Config describes one geohash clustering facet.
type Config struct {
	// Name keys the facet in requests and responses.
	Name string
	// Field is the document field holding the point.
	Field string
	// Factor is the precision factor in [0, 1]; higher means coarser clusters.
	Factor float64
	// ShowGeohashCell adds each cluster's cell rectangle to the response.
	ShowGeohashCell bool
	// ShowDocID adds the document type and id of singleton clusters to the response.
	ShowDocID bool
	// CenteringAlgorithm defaults to ArithmeticMean.
	CenteringAlgorithm format.CenteringAlgorithm
}

// fileConfig is the YAML shape of a Config.
type fileConfig struct {
	Name               string  `yaml:"name"`
	Field              string  `yaml:"field"`
	Factor             float64 `yaml:"factor"`
	ShowGeohashCell    bool    `yaml:"show_geohash_cell"`
	ShowDocID          bool    `yaml:"show_doc_id"`
	CenteringAlgorithm string  `yaml:"centering_algorithm"`
}

// LoadConfig reads and validates a YAML facet file.
//
// Example file:
//
//	name: places
//	field: location
//	factor: 0.4
//	show_geohash_cell: true
//	centering_algorithm: MEDIAN
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read facet config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes and validates a YAML facet document. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("parse facet config: %w", err)
	}

	cfg := Config{
		Name:               fc.Name,
		Field:              fc.Field,
		Factor:             fc.Factor,
		ShowGeohashCell:    fc.ShowGeohashCell,
		ShowDocID:          fc.ShowDocID,
		CenteringAlgorithm: format.ArithmeticMean,
	}
	if strings.TrimSpace(fc.CenteringAlgorithm) != "" {
		alg, err := format.ParseCenteringAlgorithm(fc.CenteringAlgorithm)
		if err != nil {
			return Config{}, err
		}
		cfg.CenteringAlgorithm = alg
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that name and field are set, the factor is in range and
// the algorithm is known.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name", errs.ErrMissingField)
	}
	if c.Field == "" {
		return fmt.Errorf("%w: facet %q", errs.ErrMissingField, c.Name)
	}
	if _, err := cluster.BitsForFactor(c.Factor); err != nil {
		return fmt.Errorf("facet %q: %w", c.Name, err)
	}
	if !c.CenteringAlgorithm.IsValid() {
		return fmt.Errorf("facet %q: %w: %d", c.Name, errs.ErrInvalidCenteringAlgorithm, c.CenteringAlgorithm)
	}

	return nil
}

// NewBuilder creates a cluster builder for the facet's factor and algorithm.
func (c Config) NewBuilder() (*cluster.Builder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return cluster.NewBuilder(c.Factor, cluster.WithCentering(c.CenteringAlgorithm))
}

type geohashRequest struct {
	Field              string  `json:"field"`
	Factor             float64 `json:"factor"`
	ShowGeohashCell    bool    `json:"show_geohash_cell"`
	ShowDocID          bool    `json:"show_doc_id"`
	CenteringAlgorithm string  `json:"centering_algorithm"`
}

// RequestBody renders the facet as a search request fragment:
//
//	{"<name>":{"geohash":{"field":...,"factor":...,"show_geohash_cell":...,
//	"show_doc_id":...,"centering_algorithm":"ARITHMETIC_MEAN"}}}
func (c Config) RequestBody() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	body := map[string]map[string]geohashRequest{
		c.Name: {
			"geohash": {
				Field:              c.Field,
				Factor:             c.Factor,
				ShowGeohashCell:    c.ShowGeohashCell,
				ShowDocID:          c.ShowDocID,
				CenteringAlgorithm: c.CenteringAlgorithm.String(),
			},
		},
	}

	return json.Marshal(body)
}
