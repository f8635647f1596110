// Package errs defines the sentinel errors returned by geocluster packages.
//
// Call sites wrap these with fmt.Errorf("...: %w", errs.ErrX) to add detail,
// so callers should match with errors.Is rather than comparing directly.
package errs

import "errors"

// Cluster precondition violations. These indicate a caller bug and are never retried.
var (
	// ErrPrecisionMismatch is returned when a point added to a cluster does not
	// encode to the cluster's geocode at the cluster's bit length.
	ErrPrecisionMismatch = errors.New("point geocode does not match cluster geocode")
	// ErrGeocodeMismatch is returned when merging clusters with different (geocode, bits).
	ErrGeocodeMismatch = errors.New("cannot merge clusters with different geocode or bits")
	// ErrCenteringMismatch is returned when merging clusters using different centering algorithms.
	ErrCenteringMismatch = errors.New("cannot merge clusters with different centering algorithms")
)

// Configuration errors.
var (
	ErrInvalidFactor             = errors.New("factor must be within [0, 1]")
	ErrInvalidBits               = errors.New("geohash bits out of range")
	ErrInvalidCoordinate         = errors.New("coordinate out of range")
	ErrInvalidCenteringAlgorithm = errors.New("invalid centering algorithm")
	ErrInvalidCompression        = errors.New("invalid compression type")
	ErrMissingField              = errors.New("facet field must be set")
)

// Wire and blob decoding errors.
var (
	// ErrMalformedWireData is returned for truncated or otherwise undecodable cluster data.
	ErrMalformedWireData  = errors.New("malformed cluster wire data")
	ErrInvalidHeaderSize  = errors.New("invalid cluster set header size")
	ErrInvalidHeaderFlags = errors.New("invalid cluster set header flags")
	ErrInvalidMagicNumber = errors.New("invalid cluster set magic number")
	ErrChecksumMismatch   = errors.New("cluster set payload checksum mismatch")
	// ErrMixedPrecision is returned when a cluster set would hold clusters with
	// different bit lengths or centering algorithms.
	ErrMixedPrecision = errors.New("cluster set requires uniform bits and centering algorithm")
	// ErrStringTooLong is returned when a string field exceeds the wire limit.
	ErrStringTooLong = errors.New("wire string too long")
	// ErrEncoderFinished is returned when a cluster-set encoder is used after Finish.
	ErrEncoderFinished = errors.New("cluster set encoder already finished")
	// ErrPayloadTooLarge is returned when a cluster-set payload exceeds 4 GiB.
	ErrPayloadTooLarge = errors.New("cluster set payload too large")
)
