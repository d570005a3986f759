package archive

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/brian-armstrong/wsz/skinerr"
	"github.com/brian-armstrong/wsz/ttesting"
)

func TestWriteRead(t *testing.T) {
	in := Archive{
		"MAIN.BMP":        []byte("main"),
		"Skin/pledit.txt": []byte("[Text]\nNormal=#00FF00\n"),
		"empty.txt":       {},
	}
	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out, err := Read(buf.Bytes())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	ttesting.AssertEqualInt(t, "entry count", len(out), len(in))
	for name, want := range in {
		if got := out[name]; !bytes.Equal(got, want) {
			t.Errorf("%s: got %q; want %q", name, got, want)
		}
	}
}

func TestFind(t *testing.T) {
	a := Archive{
		"Cool Skin/Main.bmp":            []byte("nested"),
		"Cool Skin/extra/deep/MAIN.BMP": []byte("deeper"),
		"viscolor.txt":                  []byte("top"),
		"Cool Skin/VISCOLOR.TXT":        []byte("nested"),
		`win\Region.txt`:                []byte("backslash"),
	}

	for _, tc := range []struct {
		name     string
		wantKey  string
		wantData string
	}{
		{"MAIN.BMP", "Cool Skin/Main.bmp", "nested"},
		{"main.bmp", "Cool Skin/Main.bmp", "nested"},
		{"viscolor.txt", "viscolor.txt", "top"},
		{"region.txt", `win\Region.txt`, "backslash"},
	} {
		key, data, ok := a.Find(tc.name)
		if !ok {
			t.Errorf("Find(%q): not found", tc.name)
			continue
		}
		ttesting.AssertEqualString(t, tc.name+" key", key, tc.wantKey)
		ttesting.AssertEqualString(t, tc.name+" data", string(data), tc.wantData)
	}

	if _, _, ok := a.Find("pledit.txt"); ok {
		t.Error("Find(pledit.txt) found something")
	}
	if _, err := a.Lookup("pledit.txt"); !errors.Is(err, skinerr.ErrNotFound) {
		t.Errorf("Lookup: got %v; want not found", err)
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read([]byte("PK? no")); !errors.Is(err, skinerr.ErrArchive) {
		t.Errorf("Read: got %v; want archive error", err)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing.wsz")); !errors.Is(err, skinerr.ErrIO) {
		t.Errorf("Open: got %v; want i/o error", err)
	}
}

func TestOpen(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Archive{"a.txt": []byte("a")}); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "skin.wsz")
	if err := os.WriteFile(p, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	a, err := Open(p)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ttesting.AssertEqualString(t, "contents", string(a["a.txt"]), "a")
}
