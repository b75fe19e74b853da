package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	return path
}

func TestLoadPrefixes(t *testing.T) {
	path := writeFixture(t, "prefixes.json", `["ACC", "CS", "MAT"]`)

	got, err := LoadPrefixes(path)
	if err != nil {
		t.Fatalf("LoadPrefixes returned error: %v", err)
	}

	want := []string{"ACC", "CS", "MAT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("prefixes = %v, want %v", got, want)
	}
}

func TestLoadPrefixesBadJSON(t *testing.T) {
	path := writeFixture(t, "prefixes.json", `{"not": "an array"}`)

	if _, err := LoadPrefixes(path); err == nil {
		t.Error("LoadPrefixes should fail for non-array JSON")
	}
}

func TestReadEmptyPrefixesMissingFile(t *testing.T) {
	got, err := ReadEmptyPrefixes(filepath.Join(t.TempDir(), "nope.csv"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}

	if got != nil {
		t.Errorf("prefixes = %v, want nil", got)
	}
}

func TestReadEmptyPrefixesFullLayout(t *testing.T) {
	path := writeFixture(t, "empty.csv",
		"term,term_code,prefix,reason\n"+
			"Fall 2025,1257,ZZZ,no_courses\n"+
			"Spring 2026,1261,ZZZ,no_courses\n"+
			"Fall 2025,1257,AAA,fetch_failed\n")

	got, err := ReadEmptyPrefixes(path)
	if err != nil {
		t.Fatalf("ReadEmptyPrefixes returned error: %v", err)
	}

	// Deduplicated and sorted.
	want := []string{"AAA", "ZZZ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("prefixes = %v, want %v", got, want)
	}
}

func TestReadEmptyPrefixesBareColumn(t *testing.T) {
	path := writeFixture(t, "empty.csv",
		"prefix\nZZZ\n AAA \n\n")

	got, err := ReadEmptyPrefixes(path)
	if err != nil {
		t.Fatalf("ReadEmptyPrefixes returned error: %v", err)
	}

	want := []string{"AAA", "ZZZ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("prefixes = %v, want %v", got, want)
	}
}

func TestEmptyPrefixLogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	log, err := OpenEmptyPrefixLog(path)
	if err != nil {
		t.Fatalf("OpenEmptyPrefixLog returned error: %v", err)
	}

	if err := log.Log("Fall 2025", 1257, "ZZZ", "no_courses"); err != nil {
		t.Fatalf("Log returned error: %v", err)
	}

	if err := log.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	got, err := ReadEmptyPrefixes(path)
	if err != nil {
		t.Fatalf("ReadEmptyPrefixes returned error: %v", err)
	}

	if !reflect.DeepEqual(got, []string{"ZZZ"}) {
		t.Errorf("prefixes = %v, want [ZZZ]", got)
	}
}
