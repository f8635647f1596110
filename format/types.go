package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/geocluster/errs"
)

type (
	CenteringAlgorithm uint8
	CompressionType    uint8
)

const (
	// ArithmeticMean keeps a count-weighted running mean per cluster.
	ArithmeticMean CenteringAlgorithm = 0x1
	// Median retains every point and reports the per-axis median.
	Median CenteringAlgorithm = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Wire tags of the centering algorithms.
const (
	ArithmeticMeanTag = "ARITHMETIC_MEAN"
	MedianTag         = "MEDIAN"
)

// String returns the wire tag of the algorithm.
func (a CenteringAlgorithm) String() string {
	switch a {
	case ArithmeticMean:
		return ArithmeticMeanTag
	case Median:
		return MedianTag
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether a is a known algorithm.
func (a CenteringAlgorithm) IsValid() bool {
	return a == ArithmeticMean || a == Median
}

// ParseCenteringAlgorithm parses a wire tag. Matching is case-insensitive
// so configuration files may use "median" or "arithmetic_mean".
func ParseCenteringAlgorithm(s string) (CenteringAlgorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case ArithmeticMeanTag:
		return ArithmeticMean, nil
	case MedianTag:
		return Median, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCenteringAlgorithm, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a CenteringAlgorithm) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCenteringAlgorithm, a)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *CenteringAlgorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseCenteringAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType parses a compression name such as "zstd" or "none".
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, s)
	}
}
