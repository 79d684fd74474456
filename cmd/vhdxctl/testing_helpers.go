package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/vhdxkit/vhdx/locator"
)

// writeImage writes a fake image holding loc at off inside a capacity-byte
// item and returns its path.
func writeImage(t *testing.T, off int64, capacity int, loc *locator.Locator) string {
	t.Helper()
	img := bytes.Repeat([]byte{0xCC}, int(off)+capacity+512)
	if err := loc.Encode(img[off:off+int64(capacity)], 0); err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "child.avhdx")
	if err := os.WriteFile(path, img, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	return path
}

// resetFlags restores every command flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	dumpOffset, dumpMaxSize, dumpRaw = 0, 0, false
	setOffset, setCapacity, setDelete, setLinkage = 0, 0, nil, ""
	createLinkage = ""
	setupLogger()
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("output is not valid JSON: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, want []string) {
	t.Helper()
	for _, s := range want {
		if !strings.Contains(output, s) {
			t.Errorf("output missing %q\nOutput: %s", s, output)
		}
	}
}
