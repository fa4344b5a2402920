package dataset

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestXLSX builds a minimal three-sheet workbook: shared strings for
// text cells, inline numerics, one bool. The sheetId attributes jump from
// 1 to 3, the gap a deleted sheet leaves behind.
func writeTestXLSX(t *testing.T) string {
	t.Helper()
	entries := map[string]string{
		"xl/workbook.xml": `<?xml version="1.0"?>
<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="People" sheetId="1" r:id="rId1"/>
    <sheet name="Scores" sheetId="3" r:id="rId3"/>
    <sheet name="Empty" sheetId="4" r:id="rId4"/>
  </sheets>
</workbook>`,
		"xl/_rels/workbook.xml.rels": `<?xml version="1.0"?>
<Relationships>
  <Relationship Id="rId1" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId3" Target="worksheets/sheet3.xml"/>
  <Relationship Id="rId4" Target="worksheets/sheet4.xml"/>
</Relationships>`,
		"xl/sharedStrings.xml": `<?xml version="1.0"?>
<sst><si><t>name</t></si><si><t>age</t></si><si><t>member</t></si><si><t>ann</t></si><si><t>bob</t></si><si><t>score</t></si></sst>`,
		"xl/worksheets/sheet1.xml": `<?xml version="1.0"?>
<worksheet><sheetData>
  <row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c><c r="C1" t="s"><v>2</v></c></row>
  <row r="2"><c r="A2" t="s"><v>3</v></c><c r="B2"><v>31</v></c><c r="C2" t="b"><v>1</v></c></row>
  <row r="3"><c r="A3" t="s"><v>4</v></c><c r="B3"><v>45</v></c><c r="C3" t="b"><v>0</v></c></row>
</sheetData></worksheet>`,
		"xl/worksheets/sheet3.xml": `<?xml version="1.0"?>
<worksheet><sheetData>
  <row r="1"><c r="A1" t="s"><v>5</v></c></row>
  <row r="2"><c r="A2"><v>88</v></c></row>
</sheetData></worksheet>`,
		"xl/worksheets/sheet4.xml": `<?xml version="1.0"?>
<worksheet><sheetData/></worksheet>`,
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadXLSXFile(t *testing.T) {
	path := writeTestXLSX(t)
	ds, err := ReadXLSXFile(path, DefaultLoadOptions())
	if err != nil {
		t.Fatalf("ReadXLSXFile: %v", err)
	}
	if ds.NumRows() != 2 || ds.NumCols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", ds.NumRows(), ds.NumCols())
	}
	if ds.Columns[0].Name != "name" || ds.Columns[1].Name != "age" {
		t.Fatalf("headers = %q, %q", ds.Columns[0].Name, ds.Columns[1].Name)
	}
	if s, _ := ds.Columns[0].Values[0].Text(); s != "ann" {
		t.Fatalf("shared string not resolved: %q", s)
	}
	if v, ok := ds.Columns[1].Values[1].Float(); !ok || v != 45 {
		t.Fatalf("numeric cell = %v (numeric=%v)", v, ok)
	}
	if b, ok := ds.Columns[2].Values[0].Bool(); !ok || !b {
		t.Fatalf("bool cell = %v (bool=%v)", b, ok)
	}
}

func TestReadXLSXSheetByName(t *testing.T) {
	path := writeTestXLSX(t)
	opt := DefaultLoadOptions()
	opt.SheetName = "people" // case-insensitive
	if _, err := ReadXLSXFile(path, opt); err != nil {
		t.Fatalf("sheet by name: %v", err)
	}

	opt.SheetName = "Nope"
	_, err := ReadXLSXFile(path, opt)
	if err == nil {
		t.Fatal("expected error for unknown sheet")
	}
	for _, want := range []string{"Nope", "People", "Empty"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should list %q: %v", want, err)
		}
	}
}

func TestReadXLSXSheetByPosition(t *testing.T) {
	// The second listed sheet carries sheetId 3; index 2 must still reach
	// it.
	path := writeTestXLSX(t)
	opt := DefaultLoadOptions()
	opt.SheetIndex = 2
	ds, err := ReadXLSXFile(path, opt)
	if err != nil {
		t.Fatalf("sheet by index: %v", err)
	}
	if ds.NumCols() != 1 || ds.Columns[0].Name != "score" {
		t.Fatalf("expected Scores sheet, got %d cols, header %q", ds.NumCols(), ds.Columns[0].Name)
	}
	if v, ok := ds.Columns[0].Values[0].Float(); !ok || v != 88 {
		t.Fatalf("score cell = %v (numeric=%v)", v, ok)
	}
}

func TestReadXLSXEmptySheet(t *testing.T) {
	path := writeTestXLSX(t)
	opt := DefaultLoadOptions()
	opt.SheetIndex = 3
	ds, err := ReadXLSXFile(path, opt)
	if err != nil {
		t.Fatalf("empty sheet: %v", err)
	}
	if ds.NumRows() != 0 || ds.NumCols() != 0 {
		t.Fatalf("expected empty dataset, got %dx%d", ds.NumRows(), ds.NumCols())
	}
}
