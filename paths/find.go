// Package paths locates skin files that were named without a directory.
//
// A name is tried as given first, then inside each directory listed in
// the WSZ_SKIN_PATH environment variable, the current directory's skins
// subdirectory and the user's ~/.wsz/skins.
package paths

import (
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// EnvVar lists extra skin directories, separated by os.PathListSeparator.
const EnvVar = "WSZ_SKIN_PATH"

// Find locates the passed skin file name and returns an absolute or
// relative path to it, or "" if no candidate exists.
//
// For example, for "base-2.91.wsz" it may return
// "/home/user/.wsz/skins/base-2.91.wsz".
func Find(fileName string) string {
	for _, path := range possiblePaths(fileName) {
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	glog.V(1).Infof("paths.Find(%q): not found in %v", fileName, Dirs())
	return ""
}

// Open locates the passed file in the same locations that Find would look, and
// opens it. If Find returns an empty string, an error is returned.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Wrapf(os.ErrNotExist, "paths.Open(%q): not found in %v", fileName, Dirs())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "paths.Open(%q)", fileName)
	}
	return f, nil
}
