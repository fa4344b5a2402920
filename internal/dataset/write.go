package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteCSV writes the dataset with a header row. Null cells become empty
// fields; everything else uses the canonical display form.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, d.NumCols())
	for i := range d.Columns {
		header[i] = d.Columns[i].Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	rows := d.NumRows()
	record := make([]string, d.NumCols())
	for r := 0; r < rows; r++ {
		for c := range d.Columns {
			v := d.Columns[c].Values[r]
			if v.IsNull() {
				record[c] = ""
			} else {
				record[c] = v.String()
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", r, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the dataset to path, creating or truncating it.
func (d *Dataset) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := d.WriteCSV(f); err != nil {
		return err
	}
	return f.Close()
}
