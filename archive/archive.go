// Package archive reads and writes skin archives.
//
// A skin archive (.wsz) is a zip file. Once read, it is handled purely as a
// map from entry name to contents; lookups ignore case and any directory
// prefix, since skins are zipped by hand and often contain a top-level
// folder.
package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/golang/glog"

	"github.com/brian-armstrong/wsz/skinerr"
)

// Archive maps entry names to their contents.
type Archive map[string][]byte

// Open reads the skin archive at path.
func Open(path string) (Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, skinerr.IO(err, "reading %s", path)
	}
	a, err := Read(data)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("archive.Open(%q): %d entries", path, len(a))
	return a, nil
}

// Read unpacks an in-memory zip. Directory entries are skipped.
func Read(data []byte) (Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, skinerr.Archive(err, "opening zip")
	}

	a := make(Archive, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, skinerr.Archive(err, "opening entry %s", f.Name)
		}
		contents, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, skinerr.Archive(err, "reading entry %s", f.Name)
		}
		a[f.Name] = contents
	}
	return a, nil
}

// Names returns the entry names in sorted order.
func (a Archive) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BaseName returns the last element of an entry name. Both slash and
// backslash separators are accepted.
func BaseName(name string) string {
	return path.Base(strings.ReplaceAll(name, "\\", "/"))
}

// Find looks up an entry whose base name equals name, ignoring case.
//
// An entry whose full name matches wins. Otherwise the shortest matching
// key (then the lexically smallest) is returned so that the result does
// not depend on map iteration order.
func (a Archive) Find(name string) (key string, data []byte, ok bool) {
	want := BaseName(name)
	for _, k := range a.Names() {
		if strings.EqualFold(k, name) {
			return k, a[k], true
		}
	}
	for _, k := range a.Names() {
		if !strings.EqualFold(BaseName(k), want) {
			continue
		}
		if !ok || len(k) < len(key) {
			key, ok = k, true
		}
	}
	if !ok {
		return "", nil, false
	}
	return key, a[key], true
}

// Lookup is like Find but reports a missing entry as a not found error.
func (a Archive) Lookup(name string) ([]byte, error) {
	_, data, ok := a.Find(name)
	if !ok {
		return nil, skinerr.NotFound(name)
	}
	return data, nil
}

// Write zips a into w with deflate compression, entries in sorted order.
func Write(w io.Writer, a Archive) error {
	zw := zip.NewWriter(w)
	for _, name := range a.Names() {
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
		hdr.SetMode(0644)
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return skinerr.Archive(err, "creating entry %s", name)
		}
		if _, err := fw.Write(a[name]); err != nil {
			return skinerr.Archive(err, "writing entry %s", name)
		}
	}
	if err := zw.Close(); err != nil {
		return skinerr.Archive(err, "finishing zip")
	}
	return nil
}
