package report

import (
	"os"
	"path/filepath"
	"strconv"
)

func dirOf(path string) string {
	d := filepath.Dir(path)
	if d == "." {
		return ""
	}
	return d
}

func ensureDir(path string) error {
	d := dirOf(path)
	if d == "" {
		return nil
	}
	return os.MkdirAll(d, 0o755)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
