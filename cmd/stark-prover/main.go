// Command stark-prover drives a toy end-to-end Master Table pipeline run:
// build a trace, fill/pad/randomize/LDE/commit the base table, derive
// Fiat-Shamir challenges, extend, commit again, compute quotients, and
// print the resulting transcript length. Loosely grounded on
// cmd/vybium-vm-prover/main.go's stdin-driven CLI shape, simplified since
// the VM instruction set itself is out of scope (spec §1).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/config"
	"github.com/vybium/starkcore/internal/starkcore/master"
	"github.com/vybium/starkcore/internal/starkcore/proofstream"
	"github.com/vybium/starkcore/internal/starkcore/quotient"
	"github.com/vybium/starkcore/internal/starkcore/vm"
)

// runRequest is the CLI's single JSON input, read from stdin or -trace-len,
// mirroring the teacher's JSON-line input convention without the VM's own
// program/claim/non-determinism fields (out of scope here).
type runRequest struct {
	TraceLength int `json:"trace_length"`
}

func main() {
	traceLen := flag.Int("trace-len", 0, "real (pre-padding) trace length; 0 reads a JSON request from stdin")
	flag.Parse()

	req := runRequest{TraceLength: *traceLen}
	if req.TraceLength == 0 {
		dec := json.NewDecoder(os.Stdin)
		if err := dec.Decode(&req); err != nil {
			log.Fatalf("stark-prover: reading request: %v", err)
		}
	}

	cfg := config.DefaultProverConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("stark-prover: invalid config: %v", err)
	}

	result, err := run(req.TraceLength, cfg)
	if err != nil {
		log.Fatalf("stark-prover: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("stark-prover: encoding result: %v", err)
	}
}

type runResult struct {
	PaddedHeight     int    `json:"padded_height"`
	BaseRoot         string `json:"base_root"`
	ExtRoot          string `json:"ext_root"`
	TranscriptLength int    `json:"transcript_length"`
	NumQuotients     int    `json:"num_quotients"`
}

func run(traceLen int, cfg config.ProverConfig) (*runResult, error) {
	trace := vm.NewToyTrace(traceLen)
	quotientLen := trace.PaddedHeight() * cfg.QuotientDomainLengthRatio
	friLen := trace.PaddedHeight() * cfg.FRIDomainLengthRatio

	base := master.NewBaseTable(trace, cfg.NumTraceRandomizers, quotientLen, friLen)
	base.Fill(trace)
	base.Pad(air.DefaultPadder{}, air.DefaultDegreeLowering{})
	base.RandomizeTrace()
	base.LowDegreeExtendAllColumns()
	baseRoot := base.MerkleTree().Root()

	stream := proofstream.New()
	stream.Enqueue(proofstream.NewMerkleRoot(baseRoot))

	challenges := stream.SampleScalars(4)
	ext := master.Extend(base, air.DefaultExtender{}, air.DefaultDegreeLowering{}, challenges, 2)
	ext.RandomizeTrace()
	ext.LowDegreeExtendAllColumns()
	extRoot := ext.MerkleTree().Root()
	stream.Enqueue(proofstream.NewMerkleRoot(extRoot))

	a := air.DefaultAIR{}
	sections := quotient.AllQuotients(a, base.QuotientDomainTable().Columns(), ext.QuotientDomainTable().Columns(), base.Domains().Trace, base.Domains().Quotient, challenges)
	_ = sections

	return &runResult{
		PaddedHeight:     trace.PaddedHeight(),
		BaseRoot:         fmt.Sprint(baseRoot),
		ExtRoot:          fmt.Sprint(extRoot),
		TranscriptLength: stream.TranscriptLength(),
		NumQuotients:     quotient.NumQuotients(a),
	}, nil
}
