// Package export writes the transaction report as a spreadsheet-friendly CSV file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BOM lets spreadsheet applications detect UTF-8.
const BOM = "\ufeff"

func WriteCSV(w io.Writer, header []string, records [][]string) error {
	if _, err := io.WriteString(w, BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

func FileName(prefix string, year int) string {
	return fmt.Sprintf("%s-%d.csv", prefix, year)
}

// ToDir creates dir if needed and writes the report to dir/name.
func ToDir(dir, name string, header []string, records [][]string) (path string, err error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path = filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", cerr)
		}
	}()

	if err := WriteCSV(f, header, records); err != nil {
		return "", err
	}
	return path, nil
}
