package file

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FindSubtitles collects subtitle files with the given extension from a
// mix of file and directory paths. Directories are walked recursively.
// Paths that do not exist are skipped.
func FindSubtitles(paths []string, ext string) ([]string, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var found []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		if !info.IsDir() {
			if strings.EqualFold(filepath.Ext(path), ext) {
				found = append(found, path)
			}
			continue
		}

		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && strings.EqualFold(filepath.Ext(p), ext) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return found, nil
}

// FindRecentAfter returns files under dir modified after startTime.
func FindRecentAfter(dir string, startTime time.Time) ([]string, error) {
	var recentFiles []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo,
		err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && info.ModTime().After(startTime) {
			recentFiles = append(recentFiles, path)
		}
		return nil
	})

	return recentFiles, err
}
