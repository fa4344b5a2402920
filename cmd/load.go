package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/dataset"
)

// loadFlags carries the file-loading options shared by every command that
// takes a dataset path.
type loadFlags struct {
	delimiter  string
	sheetName  string
	sheetIndex int
	maxRows    int
}

func (lf *loadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&lf.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	cmd.Flags().StringVar(&lf.sheetName, "sheet-name", "", "Excel: sheet name to load")
	cmd.Flags().IntVar(&lf.sheetIndex, "sheet-index", 1, "Excel: 1-based sheet index (used if --sheet-name not provided)")
	cmd.Flags().IntVar(&lf.maxRows, "max-rows", 0, "maximum rows to load (0 = config default)")
}

func (lf *loadFlags) load(path string) (*dataset.Dataset, error) {
	opt := dataset.DefaultLoadOptions()
	if cfg != nil && cfg.MaxRows > 0 {
		opt.MaxRows = cfg.MaxRows
	}
	if lf.maxRows > 0 {
		opt.MaxRows = lf.maxRows
	}
	switch lf.delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return nil, fmt.Errorf("unsupported --delimiter: %s", lf.delimiter)
	}
	opt.SheetName = lf.sheetName
	opt.SheetIndex = lf.sheetIndex

	log.Debugf("loading %s (max_rows=%d)", path, opt.MaxRows)
	ds, err := dataset.Load(path, opt)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d rows, %d columns", ds.NumRows(), ds.NumCols())
	return ds, nil
}

// datasetName derives a display name from the file path.
func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
