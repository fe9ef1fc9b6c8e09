package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// WriteCSV перезаписывает файл таблицей с заголовком, без столбца индекса.
func WriteCSV(path string, rows []Row) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if rows == nil {
		rows = []Row{}
	}
	if err := gocsv.MarshalCSV(&rows, w); err != nil {
		_ = f.Close()
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
