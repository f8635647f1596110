package facet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/geocluster/cluster"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/geo"
)

const sampleYAML = `
name: places
field: location
factor: 0.4
show_geohash_cell: true
show_doc_id: true
centering_algorithm: median
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, Config{
		Name:               "places",
		Field:              "location",
		Factor:             0.4,
		ShowGeohashCell:    true,
		ShowDocID:          true,
		CenteringAlgorithm: format.Median,
	}, cfg)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("name: f\nfield: loc\n"))
	require.NoError(t, err)
	require.Equal(t, format.ArithmeticMean, cfg.CenteringAlgorithm)
	require.Zero(t, cfg.Factor)
	require.False(t, cfg.ShowGeohashCell)
	require.False(t, cfg.ShowDocID)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"missing field", "name: f\n", errs.ErrMissingField},
		{"missing name", "field: loc\n", errs.ErrMissingField},
		{"factor too large", "name: f\nfield: loc\nfactor: 1.5\n", errs.ErrInvalidFactor},
		{"negative factor", "name: f\nfield: loc\nfactor: -0.1\n", errs.ErrInvalidFactor},
		{"unknown algorithm", "name: f\nfield: loc\ncentering_algorithm: MODE\n", errs.ErrInvalidCenteringAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseConfig([]byte("name: f\nfield: loc\nprecision: 3\n"))
		require.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "places", cfg.Name)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_RequestBody(t *testing.T) {
	cfg := Config{Name: "places", Field: "location", Factor: 0.4, ShowDocID: true, CenteringAlgorithm: format.ArithmeticMean}

	body, err := cfg.RequestBody()
	require.NoError(t, err)
	require.JSONEq(t, `{"places":{"geohash":{
		"field":"location",
		"factor":0.4,
		"show_geohash_cell":false,
		"show_doc_id":true,
		"centering_algorithm":"ARITHMETIC_MEAN"}}}`, string(body))

	_, err = Config{Name: "places"}.RequestBody()
	require.ErrorIs(t, err, errs.ErrMissingField)
}

func TestConfig_NewBuilder(t *testing.T) {
	cfg := Config{Name: "f", Field: "loc", Factor: 1, CenteringAlgorithm: format.Median}
	b, err := cfg.NewBuilder()
	require.NoError(t, err)
	require.Zero(t, b.Bits())
	require.Equal(t, format.Median, b.Algorithm())

	_, err = Config{Name: "f", Field: "loc"}.NewBuilder()
	require.ErrorIs(t, err, errs.ErrInvalidCenteringAlgorithm)
}

func TestRender(t *testing.T) {
	cfg := Config{Name: "places", Field: "location", Factor: 0, CenteringAlgorithm: format.ArithmeticMean}
	b, err := cfg.NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.AddWithIdentity(geo.NewPoint(10, 20), cluster.NewIdentity("shop", "42")))
	require.NoError(t, b.Add(geo.NewPoint(-10, -20)))
	require.NoError(t, b.Add(geo.NewPoint(-10, -20)))

	clusters, err := cluster.MergeAll(b.Build())
	require.NoError(t, err)

	t.Run("minimal", func(t *testing.T) {
		resp := Render(cfg, clusters)
		require.Equal(t, "places", resp.Name)
		require.Len(t, resp.Clusters, 2)

		for _, e := range resp.Clusters {
			require.Nil(t, e.GeohashCell)
			require.Empty(t, e.DocID)
			if e.Total == 1 {
				require.Nil(t, e.TopLeft)
				require.Equal(t, LatLon{Lat: 10, Lon: 20}, e.Center)
			} else {
				require.Equal(t, 2, e.Total)
				require.Equal(t, &LatLon{Lat: -10, Lon: -20}, e.TopLeft)
				require.Equal(t, &LatLon{Lat: -10, Lon: -20}, e.BottomRight)
			}
		}
	})

	t.Run("with cell and doc id", func(t *testing.T) {
		full := cfg
		full.ShowGeohashCell = true
		full.ShowDocID = true

		resp := Render(full, clusters)
		for _, e := range resp.Clusters {
			require.NotNil(t, e.GeohashCell)
			require.GreaterOrEqual(t, e.GeohashCell.TopLeft.Lat, e.Center.Lat)
			require.LessOrEqual(t, e.GeohashCell.BottomRight.Lat, e.Center.Lat)
			if e.Total == 1 {
				require.Equal(t, "shop", e.DocType)
				require.Equal(t, "42", e.DocID)
			} else {
				require.Empty(t, e.DocID)
			}
		}
	})
}

func TestResponse_Marshal(t *testing.T) {
	resp := Response{
		Name: "places",
		Type: facetType,
		Clusters: []Entry{
			{Total: 1, Center: LatLon{Lat: 1, Lon: 2}, DocType: "t", DocID: "i"},
		},
	}

	out, err := resp.Marshal()
	require.NoError(t, err)
	require.JSONEq(t, `{"places":{"_type":"geohash","clusters":[
		{"total":1,"center":{"lat":1,"lon":2},"doc_type":"t","doc_id":"i"}]}}`, string(out))

	indented, err := resp.MarshalIndent("", "  ")
	require.NoError(t, err)

	var decoded map[string]Response
	require.NoError(t, json.Unmarshal(indented, &decoded))
	require.Equal(t, resp.Clusters, decoded["places"].Clusters)
}
