package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/geocluster"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/facet"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadPoints(t *testing.T) {
	t.Run("with header and identities", func(t *testing.T) {
		records, err := readPoints(strings.NewReader("lat,lon,type,id\n52.1, 4.2,shop,1\n-3.5,7,shop,2\n"))
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, 52.1, records[0].Point.Lat)
		require.Equal(t, 4.2, records[0].Point.Lon)
		require.Equal(t, "shop", records[1].Identity.Type)
		require.Equal(t, "2", records[1].Identity.ID)
	})

	t.Run("without header", func(t *testing.T) {
		records, err := readPoints(strings.NewReader("1,2\n3,4\n"))
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Nil(t, records[0].Identity)
	})

	t.Run("empty", func(t *testing.T) {
		records, err := readPoints(strings.NewReader(""))
		require.NoError(t, err)
		require.Empty(t, records)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := readPoints(strings.NewReader("1,2\n3\n"))
		require.ErrorContains(t, err, "line 2")

		_, err = readPoints(strings.NewReader("1,2\nx,4\n"))
		require.ErrorContains(t, err, "latitude")

		_, err = readPoints(strings.NewReader("95,2\n"))
		require.ErrorIs(t, err, errs.ErrInvalidCoordinate)
	})
}

func TestPartition(t *testing.T) {
	records, err := readPoints(strings.NewReader("1,1\n2,2\n3,3\n4,4\n5,5\n"))
	require.NoError(t, err)

	parts := partition(records, 2)
	require.Len(t, parts, 2)
	require.Len(t, parts[0], 3)
	require.Len(t, parts[1], 2)
	require.Equal(t, 2.0, parts[1][0].Point.Lat)

	require.Len(t, partition(records, 0), 1)
	require.Len(t, partition(records, 10), 5)
	require.Len(t, partition(nil, 4), 1)
}

func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(envLogLevel, "")
		t.Setenv(envLogFormat, "")
		t.Setenv(envPartitions, "")

		cfg, err := loadEnv()
		require.NoError(t, err)
		require.Equal(t, envConfig{level: slog.LevelInfo, partitions: 1}, cfg)
	})

	t.Run("custom", func(t *testing.T) {
		t.Setenv(envLogLevel, "debug")
		t.Setenv(envLogFormat, "JSON")
		t.Setenv(envPartitions, "8")

		cfg, err := loadEnv()
		require.NoError(t, err)
		require.Equal(t, envConfig{level: slog.LevelDebug, json: true, partitions: 8}, cfg)
		require.IsType(t, &geocluster.Logger{}, cfg.logger())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv(envLogFormat, "")
		t.Setenv(envPartitions, "")
		t.Setenv(envLogLevel, "loud")
		_, err := loadEnv()
		require.Error(t, err)

		t.Setenv(envLogLevel, "")
		t.Setenv(envLogFormat, "xml")
		_, err = loadEnv()
		require.Error(t, err)

		t.Setenv(envLogFormat, "")
		t.Setenv(envPartitions, "0")
		_, err = loadEnv()
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Setenv(envLogLevel, "error")
	t.Setenv(envLogFormat, "")
	t.Setenv(envPartitions, "")

	dir := t.TempDir()
	config := writeFile(t, dir, "facet.yaml", "name: places\nfield: location\nfactor: 1\nshow_geohash_cell: true\n")
	points := writeFile(t, dir, "points.csv", "lat,lon\n10,20\n20,30\n30,40\n")
	blobPath := filepath.Join(dir, "out.bin")

	var stdout bytes.Buffer
	err := run([]string{"-config", config, "-points", points, "-partitions", "2", "-blob", blobPath}, &stdout)
	require.NoError(t, err)

	var resp map[string]facet.Response
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	require.Len(t, resp["places"].Clusters, 1)

	entry := resp["places"].Clusters[0]
	require.Equal(t, 3, entry.Total)
	require.InDelta(t, 20, entry.Center.Lat, 1e-9)
	require.InDelta(t, 30, entry.Center.Lon, 1e-9)
	require.NotNil(t, entry.GeohashCell)

	data, err := os.ReadFile(blobPath)
	require.NoError(t, err)
	clusters, err := geocluster.DecodeClusters(data)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	require.Equal(t, 3, clusters[0].Size())
}

func TestRun_EnvFile(t *testing.T) {
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")
	t.Setenv(envPartitions, "")
	require.NoError(t, os.Unsetenv(envPartitions))

	dir := t.TempDir()
	env := writeFile(t, dir, ".env", envPartitions+"=banana\n")
	config := writeFile(t, dir, "facet.yaml", "name: places\nfield: location\n")
	points := writeFile(t, dir, "points.csv", "1,2\n")

	err := run([]string{"-config", config, "-points", points, "-env", env}, &bytes.Buffer{})
	require.ErrorContains(t, err, envPartitions)
}

func TestRun_Errors(t *testing.T) {
	require.Error(t, run(nil, &bytes.Buffer{}))
	require.Error(t, run([]string{"-config", "x.yaml"}, &bytes.Buffer{}))

	dir := t.TempDir()
	config := writeFile(t, dir, "facet.yaml", "name: places\n")
	points := writeFile(t, dir, "points.csv", "1,2\n")
	err := run([]string{"-config", config, "-points", points}, &bytes.Buffer{})
	require.ErrorIs(t, err, errs.ErrMissingField)
}
