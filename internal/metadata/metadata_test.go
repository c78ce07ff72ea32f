package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sweep.rcst"), "placeholder")
	metaPath := filepath.Join(dir, "sweep.json")
	writeFile(t, metaPath, `{
		"solution": "Setup1 : Sweep",
		"monostatic_file": "sweep.rcst",
		"model_units": "mm",
		"frequency_units": "GHz"
	}`)

	rec, err := Load(metaPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if rec.Solution != "Setup1 : Sweep" {
		t.Errorf("expected solution 'Setup1 : Sweep', got %q", rec.Solution)
	}
	if rec.FrequencyUnits != "GHz" {
		t.Errorf("expected frequency units GHz, got %q", rec.FrequencyUnits)
	}
	if rec.ModelUnits != "mm" {
		t.Errorf("expected model units mm, got %q", rec.ModelUnits)
	}
	if rec.InputFile != metaPath {
		t.Errorf("expected input file %s, got %s", metaPath, rec.InputFile)
	}
	want := filepath.Join(dir, "sweep.rcst")
	if rec.DataPath != want {
		t.Errorf("expected data path %s, got %s", want, rec.DataPath)
	}
}

func TestLoad_AbsoluteDataPath(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(t.TempDir(), "elsewhere.rcst")
	writeFile(t, dataPath, "placeholder")

	metaPath := filepath.Join(dir, "meta.json")
	writeFile(t, metaPath, `{"solution":"s","monostatic_file":`+jsonString(dataPath)+`}`)

	rec, err := Load(metaPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if rec.DataPath != dataPath {
		t.Errorf("expected absolute data path kept as %s, got %s", dataPath, rec.DataPath)
	}
}

func TestLoad_MissingMetadataFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing metadata file")
	}
}

func TestLoad_MissingRawTable(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "meta.json")
	writeFile(t, metaPath, `{"solution":"s","monostatic_file":"gone.rcst"}`)

	if _, err := Load(metaPath); err == nil {
		t.Fatal("expected error when raw table path does not resolve")
	}
}

func TestLoad_NoMonostaticFile(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "meta.json")
	writeFile(t, metaPath, `{"solution":"s"}`)

	if _, err := Load(metaPath); err == nil {
		t.Fatal("expected error for record without monostatic_file")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "meta.json")
	writeFile(t, metaPath, `{"solution":`)

	if _, err := Load(metaPath); err == nil {
		t.Fatal("expected error for malformed record")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "d.rcst"), "placeholder")
	metaPath := filepath.Join(dir, "meta.json")

	rec := &Record{Solution: "s", MonostaticFile: "d.rcst", ModelUnits: "in", FrequencyUnits: "MHz"}
	if err := Save(metaPath, rec); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(metaPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Solution != "s" || loaded.ModelUnits != "in" || loaded.FrequencyUnits != "MHz" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

// jsonString quotes a path for embedding in a JSON literal.
func jsonString(s string) string {
	out := `"`
	for _, r := range s {
		if r == '\\' || r == '"' {
			out += `\`
		}
		out += string(r)
	}
	return out + `"`
}
