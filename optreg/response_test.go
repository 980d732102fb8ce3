//nolint:testpackage // using package name 'optreg' to access unexported fields for testing
package optreg

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeResponseFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write response file: %v", err)
	}
	return path
}

func TestExpandResponseFiles(t *testing.T) {
	dir := t.TempDir()
	rsp := writeResponseFile(t, dir, "flags.rsp", "-v -o out.txt\n\"two words\"\n")

	got, err := ExpandResponseFiles([]string{"-n", "@" + rsp, "tail"}, TokenizeGNU)
	if err != nil {
		t.Fatalf("Failed to expand: %v", err)
	}
	want := []string{"-n", "-v", "-o", "out.txt", "two words", "tail"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestExpandResponseFilesNested(t *testing.T) {
	dir := t.TempDir()
	inner := writeResponseFile(t, dir, "inner.rsp", "-deep")
	outer := writeResponseFile(t, dir, "outer.rsp", "-top @"+inner)

	got, err := ExpandResponseFiles([]string{"@" + outer}, TokenizeGNU)
	if err != nil {
		t.Fatalf("Failed to expand: %v", err)
	}
	want := []string{"-top", "-deep"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestExpandResponseFilesCycle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "self.rsp")
	writeResponseFile(t, dir, "self.rsp", "@"+path)

	if _, err := ExpandResponseFiles([]string{"@" + path}, TokenizeGNU); err == nil {
		t.Errorf("Expected cycle error")
	}
}

func TestExpandResponseFilesMissingLeftVerbatim(t *testing.T) {
	got, err := ExpandResponseFiles([]string{"@/no/such/file.rsp", "-v"}, nil)
	if err != nil {
		t.Fatalf("Failed to expand: %v", err)
	}
	want := []string{"@/no/such/file.rsp", "-v"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestExpandedTokensParse(t *testing.T) {
	dir := t.TempDir()
	rsp := writeResponseFile(t, dir, "build.rsp", "-I/usr/include -DNDEBUG main.c")

	r := NewRegistry()
	includes := r.StringSeq("I", "include path").Prefix().Option()
	defines := r.StringSeq("D", "macro define").Prefix().Option()
	files := r.PositionalSeq("files", "inputs").Option()

	tokens, err := ExpandResponseFiles([]string{"@" + rsp}, TokenizeGNU)
	if err != nil {
		t.Fatalf("Failed to expand: %v", err)
	}
	if err := r.Parse(tokens); err != nil {
		t.Fatalf("Failed to parse expanded tokens: %v", err)
	}

	if got := GetAll[string](includes); len(got) != 1 || got[0] != "/usr/include" {
		t.Errorf("Expected includes=[/usr/include], got %v", got)
	}
	if got := GetAll[string](defines); len(got) != 1 || got[0] != "NDEBUG" {
		t.Errorf("Expected defines=[NDEBUG], got %v", got)
	}
	if got := GetAll[string](files); len(got) != 1 || got[0] != "main.c" {
		t.Errorf("Expected files=[main.c], got %v", got)
	}
}
