// Package gold implements golden files.
package gold

import (
	"bytes"
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

// writeFile writes golden file if update is requested.
func writeFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}
}

// Str checks text golden file.
func Str(t testing.TB, s string, elems ...string) {
	t.Helper()

	if len(elems) == 0 {
		elems = []string{"file.txt"}
	}
	if Update {
		writeFile(t, []byte(s), elems...)
		return
	}
	if expected := string(ReadFile(t, elems...)); expected != s {
		t.Fatalf("golden file %s mismatch:\n--- expected\n%s\n--- got\n%s",
			path.Join(elems...), expected, s,
		)
	}
}

// Bytes checks binary golden file.
func Bytes(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	if len(elems) == 0 {
		elems = []string{"file"}
	}
	last := len(elems) - 1
	elems = append(append([]string(nil), elems[:last]...), elems[last]+".raw")
	if Update {
		writeFile(t, data, elems...)
		return
	}
	if expected := ReadFile(t, elems...); !bytes.Equal(expected, data) {
		t.Fatalf("golden file %s mismatch: %x (expected) != %x (got)",
			path.Join(elems...), expected, data,
		)
	}
}
