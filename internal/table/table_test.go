package table

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{Key: Key{Freq: "100Hz", Level: "Level1"}, Values: []complex128{complex(1, 0), complex(2, 1)}},
		{Key: Key{Freq: "200Hz", Level: "Level2"}, Values: []complex128{complex(0, 1), complex(3, -1)}},
		{Key: Key{Freq: "100Hz", Level: "Level2"}, Values: []complex128{complex(0.5, 0.5), complex(1, 1)}},
	}
}

func TestNew_Axes(t *testing.T) {
	tbl, err := New([]string{"Sphere", "Aux"}, sampleRows())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if tbl.Name() != "Sphere" {
		t.Errorf("expected name Sphere, got %s", tbl.Name())
	}
	if tbl.Len() != 3 {
		t.Errorf("expected 3 rows, got %d", tbl.Len())
	}

	freqs := tbl.Frequencies()
	if len(freqs) != 2 || freqs[0] != "100Hz" || freqs[1] != "200Hz" {
		t.Errorf("expected frequencies [100Hz 200Hz], got %v", freqs)
	}

	levels := tbl.Levels()
	if len(levels) != 2 || levels[0] != "Level1" || levels[1] != "Level2" {
		t.Errorf("expected levels [Level1 Level2], got %v", levels)
	}

	if tbl.ThetaValues() != nil {
		t.Errorf("expected no theta axis for unlabelled levels, got %v", tbl.ThetaValues())
	}
	if tbl.PhiValues() != nil {
		t.Errorf("expected no phi axis for unlabelled levels, got %v", tbl.PhiValues())
	}
}

func TestNew_DuplicateKey(t *testing.T) {
	rows := []Row{
		{Key: Key{Freq: "100Hz", Level: "L"}, Values: []complex128{1}},
		{Key: Key{Freq: "100Hz", Level: "L"}, Values: []complex128{2}},
	}
	if _, err := New([]string{"RCS"}, rows); err == nil {
		t.Fatal("expected error for duplicate composite key")
	}
}

func TestNew_NoColumns(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatal("expected error for table with no columns")
	}
}

func TestNew_ColumnCountMismatch(t *testing.T) {
	rows := []Row{{Key: Key{Freq: "100Hz", Level: "L"}, Values: []complex128{1, 2}}}
	if _, err := New([]string{"RCS"}, rows); err == nil {
		t.Fatal("expected error for row value count mismatch")
	}
}

func TestTable_AngleAxes(t *testing.T) {
	rows := []Row{
		{Key: Key{Freq: "1GHz", Level: FormatAngles("0deg", "0deg")}, Values: []complex128{1}},
		{Key: Key{Freq: "1GHz", Level: FormatAngles("0deg", "10deg")}, Values: []complex128{2}},
		{Key: Key{Freq: "1GHz", Level: FormatAngles("30deg", "0deg")}, Values: []complex128{3}},
	}
	tbl, err := New([]string{"RCS"}, rows)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	thetas := tbl.ThetaValues()
	if len(thetas) != 2 || thetas[0] != "0deg" || thetas[1] != "30deg" {
		t.Errorf("expected thetas [0deg 30deg], got %v", thetas)
	}
	phis := tbl.PhiValues()
	if len(phis) != 2 || phis[0] != "0deg" || phis[1] != "10deg" {
		t.Errorf("expected phis [0deg 10deg], got %v", phis)
	}
}

func TestTable_Value(t *testing.T) {
	tbl, err := New([]string{"Sphere", "Aux"}, sampleRows())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	v, ok := tbl.Value(Key{Freq: "200Hz", Level: "Level2"}, "Aux")
	if !ok {
		t.Fatal("expected value for existing key/column")
	}
	if v != complex(3, -1) {
		t.Errorf("expected (3,-1), got %v", v)
	}

	if _, ok := tbl.Value(Key{Freq: "300Hz", Level: "Level1"}, "Sphere"); ok {
		t.Error("expected missing key to report ok=false")
	}
	if _, ok := tbl.Value(Key{Freq: "100Hz", Level: "Level1"}, "Nope"); ok {
		t.Error("expected missing column to report ok=false")
	}
}

func TestReadWrite_RoundTrip(t *testing.T) {
	columns := []string{"Sphere", "Aux"}
	rows := sampleRows()

	var buf bytes.Buffer
	if err := Write(&buf, columns, rows); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	tbl, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	if tbl.Name() != "Sphere" {
		t.Errorf("expected name Sphere, got %s", tbl.Name())
	}
	if tbl.Len() != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), tbl.Len())
	}
	for i, row := range tbl.Rows() {
		if row.Key != rows[i].Key {
			t.Errorf("row %d: expected key %v, got %v", i, rows[i].Key, row.Key)
		}
		for c, v := range row.Values {
			if v != rows[i].Values[c] {
				t.Errorf("row %d col %d: expected %v, got %v", i, c, rows[i].Values[c], v)
			}
		}
	}
}

func TestRead_BadMagic(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("NOPE...."))); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestRead_Truncated(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []string{"RCS"}, sampleRowsSingleColumn()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	data := buf.Bytes()
	if _, err := Read(bytes.NewReader(data[:len(data)-8])); err == nil {
		t.Fatal("expected error for truncated table")
	}
}

func sampleRowsSingleColumn() []Row {
	return []Row{
		{Key: Key{Freq: "100Hz", Level: "L1"}, Values: []complex128{complex(1, 2)}},
		{Key: Key{Freq: "200Hz", Level: "L2"}, Values: []complex128{complex(3, 4)}},
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.rcst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp table: %v", err)
	}
	if err := Write(f, []string{"RCS"}, sampleRowsSingleColumn()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp table: %v", err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if tbl.Len() != 2 {
		t.Errorf("expected 2 rows, got %d", tbl.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.rcst")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseAngles(t *testing.T) {
	theta, phi, ok := ParseAngles("IWaveTheta='45deg' IWavePhi='90deg'")
	if !ok {
		t.Fatal("expected angle label to parse")
	}
	if theta != "45deg" || phi != "90deg" {
		t.Errorf("expected 45deg/90deg, got %s/%s", theta, phi)
	}

	if _, _, ok := ParseAngles("Level1"); ok {
		t.Error("expected plain level label to carry no angles")
	}
	if _, _, ok := ParseAngles("IWaveTheta='45deg'"); ok {
		t.Error("expected label with only theta to carry no angle pair")
	}
}

func TestParseFrequency(t *testing.T) {
	cases := []struct {
		label string
		hz    float64
		ok    bool
	}{
		{"100Hz", 100, true},
		{"1.5kHz", 1500, true},
		{"150MHz", 150e6, true},
		{"9.5GHz", 9.5e9, true},
		{"2THz", 2e12, true},
		{"1000", 1000, true},
		{" 10GHz ", 10e9, true},
		{"tenGHz", 0, false},
		{"sweep-a", 0, false},
	}

	for _, tc := range cases {
		hz, ok := ParseFrequency(tc.label)
		if ok != tc.ok {
			t.Errorf("%q: expected ok=%v, got %v", tc.label, tc.ok, ok)
			continue
		}
		if ok && math.Abs(hz-tc.hz) > 1e-6 {
			t.Errorf("%q: expected %g Hz, got %g", tc.label, tc.hz, hz)
		}
	}
}
