package encoder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteListFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	images := []string{
		filepath.Join(dir, "one.png"),
		filepath.Join(dir, "two.png"),
		filepath.Join(dir, "three.png"),
	}

	name, cleanup, err := WriteListFile(images, 1.5)
	if err != nil {
		t.Fatalf("WriteListFile() error = %v", err)
	}
	defer cleanup()

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("failed to read list file: %v", err)
	}

	want := "file '" + images[0] + "'\n" +
		"duration 1.5\n" +
		"file '" + images[1] + "'\n" +
		"duration 1.5\n" +
		"file '" + images[2] + "'\n" +
		"duration 1.5\n" +
		"file '" + images[2] + "'\n"
	if string(data) != want {
		t.Errorf("list file contents = %q, want %q", data, want)
	}
}

func TestWriteListFileAbsolutePaths(t *testing.T) {
	t.Parallel()

	name, cleanup, err := WriteListFile([]string{"relative.png"}, 1)
	if err != nil {
		t.Fatalf("WriteListFile() error = %v", err)
	}
	defer cleanup()

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("failed to read list file: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if !strings.HasPrefix(line, "file '") {
			continue
		}
		path := strings.TrimSuffix(strings.TrimPrefix(line, "file '"), "'")
		if !filepath.IsAbs(path) {
			t.Errorf("list entry %q is not absolute", path)
		}
	}
}

func TestWriteListFileEmpty(t *testing.T) {
	t.Parallel()

	if _, _, err := WriteListFile(nil, 1); err == nil {
		t.Error("WriteListFile(nil) expected error, got nil")
	}
}

func TestWriteListFileCleanup(t *testing.T) {
	t.Parallel()

	name, cleanup, err := WriteListFile([]string{"a.png"}, 1)
	if err != nil {
		t.Fatalf("WriteListFile() error = %v", err)
	}

	cleanup()
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Errorf("list file %s still exists after cleanup", name)
	}
}
