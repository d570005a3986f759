package paths

import (
	"flag"
)

// SetupSkinFlag creates a new string flag with the passed name, defaulting to
// wherever Find locates fileName. If it is not found in any of the skin
// directories, the flag defaults to an empty string.
func SetupSkinFlag(fileName, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, Find(fileName), "Path to the skin to use; defaults to "+fileName+" from "+EnvVar+" or the usual skin directories")
}
