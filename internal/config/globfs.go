package config

import "os"
import "io/fs"

// rootFS adapts projectRoot to the io/fs.FS doublestar.Glob expects. An
// empty projectRoot globs relative to the process's working directory.
func rootFS(projectRoot string) fs.FS {
	if projectRoot == "" {
		projectRoot = "."
	}
	return os.DirFS(projectRoot)
}
