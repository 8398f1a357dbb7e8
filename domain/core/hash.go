package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// Short returns the first 12 hex characters, enough to tell runs apart in a report.
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// SampleHash fingerprints the exact sequence of values handed to the computation.
type SampleHash Hash

// String returns the full hex digest.
func (h SampleHash) String() string { return Hash(h).String() }

// Short returns the abbreviated digest printed next to a summary.
func (h SampleHash) Short() string { return Hash(h).Short() }

// ComputeSampleHash hashes values in their given order using their IEEE-754 bits,
// so 0 and -0 or two different NaN payloads produce different fingerprints.
func ComputeSampleHash(values []float64) SampleHash {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return SampleHash(NewHash(buf))
}
