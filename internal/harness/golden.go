package harness

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenSuffix is the file extension of golden traces.
const GoldenSuffix = ".golden"

// ErrGoldenMismatch is returned by CompareGolden when a trace differs from
// its golden file.
var ErrGoldenMismatch = errors.New("trace does not match golden file")

// EncodeTrace renders a trace as one compact JSON object per line.
func EncodeTrace(trace []TraceEvent) ([]byte, error) {
	var buf bytes.Buffer
	for _, event := range trace {
		line, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to encode trace event %d: %w", event.Seq, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if the scenario cannot run. A trace mismatch fails t.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's trace against the golden file
// for name without re-running the scenario.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := EncodeTrace(result.Trace)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(GoldenSuffix),
	)
	g.Assert(t, name, data)
	return nil
}

// CompareGolden compares a trace against dir/{name}.golden outside of tests.
// It returns ErrGoldenMismatch when the content differs.
func CompareGolden(dir, name string, trace []TraceEvent) error {
	want, err := os.ReadFile(filepath.Join(dir, name+GoldenSuffix))
	if err != nil {
		return fmt.Errorf("failed to read golden file: %w", err)
	}
	got, err := EncodeTrace(trace)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, got) {
		return fmt.Errorf("%s: %w", name, ErrGoldenMismatch)
	}
	return nil
}

// WriteGolden writes a trace to dir/{name}.golden, creating dir if needed.
func WriteGolden(dir, name string, trace []TraceEvent) error {
	data, err := EncodeTrace(trace)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create golden dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+GoldenSuffix), data, 0o644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}
