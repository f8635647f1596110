package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/geocluster"
)

const (
	envLogLevel   = "GEOCLUSTER_LOG_LEVEL"
	envLogFormat  = "GEOCLUSTER_LOG_FORMAT"
	envPartitions = "GEOCLUSTER_PARTITIONS"
)

type envConfig struct {
	level      slog.Level
	json       bool
	partitions int
}

func loadEnv() (envConfig, error) {
	cfg := envConfig{level: slog.LevelInfo, partitions: 1}

	if v := os.Getenv(envLogLevel); v != "" {
		if err := cfg.level.UnmarshalText([]byte(v)); err != nil {
			return envConfig{}, fmt.Errorf("%s: %w", envLogLevel, err)
		}
	}

	switch v := strings.ToLower(strings.TrimSpace(os.Getenv(envLogFormat))); v {
	case "", "text":
	case "json":
		cfg.json = true
	default:
		return envConfig{}, fmt.Errorf("%s: unknown format %q", envLogFormat, v)
	}

	if v := os.Getenv(envPartitions); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return envConfig{}, fmt.Errorf("%s: want a positive integer, got %q", envPartitions, v)
		}
		cfg.partitions = n
	}

	return cfg, nil
}

func (c envConfig) logger() *geocluster.Logger {
	if c.json {
		return geocluster.NewJSONLogger(c.level)
	}

	return geocluster.NewTextLogger(c.level)
}
