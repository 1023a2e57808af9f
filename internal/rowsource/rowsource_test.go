package rowsource

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	input := "\uFEFFCount,Name,Edition\n" +
		"4,\"Fire // Ice\",apc\n" +
		",,\n" +
		"1,Opt,inv\n"

	doc, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	want := []string{"count", "name", "edition"}
	if len(doc.Headers) != len(want) {
		t.Fatalf("headers = %v", doc.Headers)
	}
	for i, h := range want {
		if doc.Headers[i] != h {
			t.Errorf("headers[%d] = %q, want %q", i, doc.Headers[i], h)
		}
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 (blank row dropped)", len(doc.Rows))
	}
	if doc.Rows[0].Number != 2 || doc.Rows[1].Number != 4 {
		t.Errorf("row numbers = %d, %d; want 2, 4", doc.Rows[0].Number, doc.Rows[1].Number)
	}
	if got := doc.Rows[0].Value("name"); got != "Fire // Ice" {
		t.Errorf("name = %q", got)
	}
	if doc.SignatureFormat != "" {
		t.Errorf("unexpected signature format %q", doc.SignatureFormat)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "Count,Name,Edition\n" +
		"1,Opt\n" +
		"2,Ponder,m12,extra\n"

	doc, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(doc.Rows))
	}
	if got := doc.Rows[0].Value("edition"); got != "" {
		t.Errorf("short row edition = %q, want empty", got)
	}
	if got := doc.Rows[1].Value("edition"); got != "m12" {
		t.Errorf("edition = %q, want m12", got)
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestReadDek(t *testing.T) {
	input := `<?xml version="1.0" encoding="utf-8"?>
<Deck xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <NetDeckID>0</NetDeckID>
  <Cards CatID="79038" Quantity="4" Sideboard="false" Name="Reaper King" />
  <Cards CatID="12345" Quantity="2" Sideboard="true" Name="Opt" />
</Deck>`

	doc, err := ReadDek(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDek: %v", err)
	}
	if doc.SignatureFormat != "dek" {
		t.Fatalf("signature format = %q, want dek", doc.SignatureFormat)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(doc.Rows))
	}
	first := doc.Rows[0]
	if first.Number != 2 {
		t.Errorf("first row number = %d, want 2", first.Number)
	}
	if first.Value("catid") != "79038" || first.Value("name") != "Reaper King" {
		t.Errorf("row values = %v", first.Values)
	}
	if doc.Rows[1].Value("sideboard") != "true" {
		t.Errorf("sideboard = %q", doc.Rows[1].Value("sideboard"))
	}
}

func TestReadDekMalformed(t *testing.T) {
	if _, err := ReadDek(strings.NewReader("<Deck><Cards")); err == nil {
		t.Fatal("expected error for truncated XML")
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Name", "Set code", "Quantity"},
		{"Opt", "inv", 4},
		{"Ponder", "m12", 1},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}
	buf := bytes.NewBuffer(nil)
	if _, err := f.WriteTo(buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	doc, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if len(doc.Headers) != 3 || doc.Headers[1] != "set code" {
		t.Fatalf("headers = %v", doc.Headers)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(doc.Rows))
	}
	if got := doc.Rows[0].Value("quantity"); got != "4" {
		t.Errorf("quantity = %q, want 4", got)
	}
	if doc.Rows[1].Number != 3 {
		t.Errorf("second row number = %d, want 3", doc.Rows[1].Number)
	}
}

func TestReadPathPrefersSignature(t *testing.T) {
	dir := t.TempDir()

	// A deck export renamed to .csv must still parse as XML.
	path := filepath.Join(dir, "deck.csv")
	deck := `<?xml version="1.0"?><Deck><Cards CatID="1" Quantity="1" Name="Opt" /></Deck>`
	if err := os.WriteFile(path, []byte(deck), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ReadPath(path)
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	if doc.SignatureFormat != "dek" {
		t.Fatalf("signature format = %q, want dek", doc.SignatureFormat)
	}

	csvPath := filepath.Join(dir, "cards.csv")
	if err := os.WriteFile(csvPath, []byte("Name\nOpt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err = ReadPath(csvPath)
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	if doc.SignatureFormat != "" || len(doc.Rows) != 1 {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestReadPathMissingFile(t *testing.T) {
	if _, err := ReadPath(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
