package paz

import (
	"errors"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"testing"
)

const modelYAML = `# STS-2-like broadband velocity response
poles:
  - [-0.037004, 0.037016]
  - [-0.037004, -0.037016]
  - [-251.33, 0]
zeros:
  - [0, 0]
  - [0, 0]
gain: 60077000.0
sensitivity: 1500.0
`

func TestParseModel(t *testing.T) {
	m, err := Parse([]byte(modelYAML))
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Poles) != 3 || len(m.Zeros) != 2 {
		t.Fatalf("got %d poles / %d zeros, want 3 / 2", len(m.Poles), len(m.Zeros))
	}

	if cmplx.Abs(m.Poles[0]-complex(-0.037004, 0.037016)) > 1e-12 {
		t.Errorf("pole 0 = %v", m.Poles[0])
	}

	if m.Zeros[0] != 0 {
		t.Errorf("zero 0 = %v, want 0", m.Zeros[0])
	}

	if math.Abs(m.Gain-60077000) > 1e-3 || math.Abs(m.Sensitivity-1500) > 1e-12 {
		t.Errorf("gain/sensitivity = %f / %f", m.Gain, m.Sensitivity)
	}
}

func TestParseRejectsBadPair(t *testing.T) {
	_, err := Parse([]byte("poles:\n  - [1, 2, 3]\ngain: 1\n"))
	if !errors.Is(err, ErrBadComplexPair) {
		t.Errorf("err = %v, want %v", err, ErrBadComplexPair)
	}
}

func TestParseRejectsInvalidModel(t *testing.T) {
	_, err := Parse([]byte("zeros:\n  - [0, 0]\ngain: 1\n"))
	if !errors.Is(err, ErrNoPoles) {
		t.Errorf("err = %v, want %v", err, ErrNoPoles)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("poles: [not: valid"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := os.WriteFile(path, []byte(modelYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Poles) != 3 {
		t.Errorf("got %d poles, want 3", len(m.Poles))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
