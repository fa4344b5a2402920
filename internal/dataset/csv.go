package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadOptions controls how files are turned into a Dataset.
type LoadOptions struct {
	// MaxRows limits rows loaded; 0 means unlimited.
	MaxRows int
	// Delimiter for CSV. If 0, auto-detects among ',' ';' '\t'.
	Delimiter rune
	// SheetName selects an XLSX sheet by name; empty uses SheetIndex.
	SheetName string
	// SheetIndex is the 1-based position of the XLSX sheet in the
	// workbook's sheet list (first sheet == 1).
	SheetIndex int
}

// DefaultLoadOptions returns reasonable defaults for interactive use.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{MaxRows: 100000, SheetIndex: 1}
}

// Load reads a tabular file into a Dataset, dispatching on extension.
func Load(path string, opt LoadOptions) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return ReadCSVFile(path, opt)
	case ".xlsx":
		return ReadXLSXFile(path, opt)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

// ReadCSVFile opens path and parses it as CSV/TSV.
func ReadCSVFile(path string, opt LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	if opt.Delimiter == 0 && strings.HasSuffix(strings.ToLower(path), ".tsv") {
		opt.Delimiter = '\t'
	}
	return ReadCSV(f, opt)
}

// ReadCSV parses CSV content from r. The first record is the header; every
// following record becomes one row, padded with nulls when short. With no
// explicit delimiter the header line is sniffed for ',' ';' '\t'.
func ReadCSV(r io.Reader, opt LoadOptions) (*Dataset, error) {
	br := bufio.NewReader(r)
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(br)
	}
	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Dataset{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make([]Column, len(header))
	for i, h := range header {
		cols[i] = Column{Name: strings.TrimSpace(h)}
	}

	rows := 0
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", rows+1, err)
		}
		if opt.MaxRows > 0 && rows >= opt.MaxRows {
			break
		}
		rows++
		for i := range cols {
			raw := ""
			if i < len(rec) {
				raw = rec[i]
			}
			cols[i].Values = append(cols[i].Values, ParseValue(raw))
		}
	}
	return New(cols), nil
}

// sniffDelimiter counts candidate delimiters in the first line and picks
// the most frequent one. Comma wins ties.
func sniffDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(4096)
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	best := ','
	bestN := strings.Count(line, ",")
	for _, cand := range []rune{';', '\t'} {
		if n := strings.Count(line, string(cand)); n > bestN {
			best, bestN = cand, n
		}
	}
	return best
}
