package paths

import (
	"os"
	"path/filepath"
)

// Dirs returns the directories searched after the name itself, in order.
func Dirs() []string {
	var dirs []string
	for _, d := range filepath.SplitList(os.Getenv(EnvVar)) {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	dirs = append(dirs, "skins")
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".wsz", "skins"))
	}
	return dirs
}

func possiblePaths(fileName string) []string {
	paths := []string{fileName}
	if filepath.IsAbs(fileName) {
		return paths
	}
	for _, d := range Dirs() {
		paths = append(paths, filepath.Join(d, fileName))
	}
	return paths
}
