// Package config holds the prover's tunable parameters, grounded on the
// teacher's utils.Config / utils.DefaultConfig builder pattern
// (internal/vybium-starks-vm/utils/config.go).
package config

import "fmt"

// ProverConfig controls the shape of the Master Table pipeline.
type ProverConfig struct {
	// NumTraceRandomizers is the count of uniformly random rows folded into
	// the randomized-trace domain for zero-knowledge (spec §3, §4.5).
	NumTraceRandomizers int
	// QuotientDomainLengthRatio and FRIDomainLengthRatio are multiples of
	// the trace domain's length (must be powers of two >= 1).
	QuotientDomainLengthRatio int
	FRIDomainLengthRatio      int
	// SecurityLevel is advisory metadata threaded into the sponge's digest
	// width choice in a larger system; this repo fixes tip5 parameters
	// regardless, so it is recorded but not acted on.
	SecurityLevel int
}

// DefaultProverConfig mirrors the teacher's DefaultConfig(): modest values
// suitable for tests and small end-to-end runs.
func DefaultProverConfig() ProverConfig {
	return ProverConfig{
		NumTraceRandomizers:       4,
		QuotientDomainLengthRatio: 2,
		FRIDomainLengthRatio:      4,
		SecurityLevel:             128,
	}
}

// WithNumTraceRandomizers returns a copy of c with the field overridden,
// following the teacher's With* builder-method convention.
func (c ProverConfig) WithNumTraceRandomizers(n int) ProverConfig {
	c.NumTraceRandomizers = n
	return c
}

// WithSecurityLevel returns a copy of c with the field overridden.
func (c ProverConfig) WithSecurityLevel(bits int) ProverConfig {
	c.SecurityLevel = bits
	return c
}

// Validate checks the invariants the pipeline relies on.
func (c ProverConfig) Validate() error {
	if c.NumTraceRandomizers < 0 {
		return fmt.Errorf("config: NumTraceRandomizers must be non-negative, got %d", c.NumTraceRandomizers)
	}
	if !isPowerOfTwo(c.QuotientDomainLengthRatio) {
		return fmt.Errorf("config: QuotientDomainLengthRatio must be a power of two, got %d", c.QuotientDomainLengthRatio)
	}
	if !isPowerOfTwo(c.FRIDomainLengthRatio) {
		return fmt.Errorf("config: FRIDomainLengthRatio must be a power of two, got %d", c.FRIDomainLengthRatio)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
