package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/geocluster"
	"github.com/arloliu/geocluster/cluster"
	"github.com/arloliu/geocluster/geo"
)

func readPointsFile(path string) ([]cluster.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open points: %w", err)
	}
	defer f.Close()

	return readPoints(f)
}

// readPoints parses lat,lon[,type,id] rows. A first row whose latitude is
// not a number is treated as a header.
func readPoints(r io.Reader) ([]cluster.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var records []cluster.Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("points line %d: %w", line, err)
		}

		if line == 1 && isHeader(row) {
			continue
		}

		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("points line %d: %w", line, err)
		}
		records = append(records, rec)
	}
}

func isHeader(row []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	return err != nil
}

func parseRecord(row []string) (cluster.Record, error) {
	if len(row) != 2 && len(row) != 4 {
		return cluster.Record{}, fmt.Errorf("want 2 or 4 columns, got %d", len(row))
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	if err != nil {
		return cluster.Record{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return cluster.Record{}, fmt.Errorf("longitude: %w", err)
	}

	p := geo.NewPoint(lat, lon)
	if err := p.Validate(); err != nil {
		return cluster.Record{}, err
	}

	rec := cluster.Record{Point: p}
	if len(row) == 4 {
		rec.Identity = cluster.NewIdentity(strings.TrimSpace(row[2]), strings.TrimSpace(row[3]))
	}

	return rec, nil
}

// partition splits records round-robin into n partitions.
func partition(records []cluster.Record, n int) []geocluster.Partition {
	n = max(1, min(n, len(records)))
	parts := make([]geocluster.Partition, n)
	for i := range parts {
		parts[i] = make(geocluster.Partition, 0, len(records)/n+1)
	}
	for i, r := range records {
		parts[i%n] = append(parts[i%n], r)
	}

	return parts
}
