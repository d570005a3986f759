package paths

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/brian-armstrong/wsz/ttesting"
)

func TestFind(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "base.wsz"), []byte("PK"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(other, "dir.wsz"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, other+string(os.PathListSeparator)+dir)

	ttesting.AssertEqualString(t, "found in env dir", Find("base.wsz"), filepath.Join(dir, "base.wsz"))
	ttesting.AssertEqualString(t, "missing", Find("missing.wsz"), "")
	ttesting.AssertEqualString(t, "directories are not files", Find("dir.wsz"), "")

	abs := filepath.Join(dir, "base.wsz")
	ttesting.AssertEqualString(t, "absolute path", Find(abs), abs)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.wsz"), []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, dir)

	f, err := Open("a.wsz")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	f.Close()

	if _, err := Open("b.wsz"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(b.wsz): got %v; want not exist", err)
	}
}

func TestSetupSkinFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flagged.wsz")
	if err := os.WriteFile(path, []byte("PK"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, dir)

	var skin string
	SetupSkinFlag("flagged.wsz", "test_skin", &skin)
	ttesting.AssertEqualString(t, "value", skin, path)
	ttesting.AssertEqualString(t, "default", flag.Lookup("test_skin").DefValue, path)
}
