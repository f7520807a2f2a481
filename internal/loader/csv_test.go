package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"grantbook/internal/core"
)

const sampleCSV = `Transaction ID,Charity,EIN,Amount,Sent Date,Grant Status
T-1,Young Life,84-0385934,"5,000.00",1/1/24,Payment Cleared
T-2,Local Pantry,,750.00,6/1/22,
T-3,,,,,
`

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("all-blank rows must be dropped; got %d records", len(records))
	}

	first := records[0]
	if first.String(core.FieldCharity) != "Young Life" {
		t.Fatalf("charity = %q", first.String(core.FieldCharity))
	}
	if first.String(core.FieldAmount) != "5,000.00" {
		t.Fatalf("amount must stay a raw string: %q", first.String(core.FieldAmount))
	}
	// Header order preserved on the record.
	fields := first.Fields()
	if fields[0] != core.FieldTransactionID || fields[1] != core.FieldCharity {
		t.Fatalf("field order wrong: %v", fields)
	}

	// Blank cells omitted entirely.
	second := records[1]
	if second.Has(core.FieldEIN) || second.Has(core.FieldStatus) {
		t.Fatalf("blank cells must be omitted: %v", second.Fields())
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	in := "Charity,Amount\nA,100,extra-cell\nB\n"
	records, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Has("extra-cell") || records[0].Len() != 2 {
		t.Fatal("cells beyond the header must be dropped")
	}
	if records[1].Len() != 1 || records[1].String("Charity") != "B" {
		t.Fatal("short rows keep what they have")
	}
}

func TestReadCSVEmpty(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(""))
	if err != nil || records != nil {
		t.Fatalf("empty input: %v, %v", records, err)
	}
}

func TestCSVFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grants.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	src := NewCSVFile(path, nil)
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestNewSourceFactory(t *testing.T) {
	if _, err := New(Config{Type: CSVSource}, nil); err == nil {
		t.Fatal("csv source without a path must fail")
	}
	if _, err := New(Config{Type: "carrier-pigeon"}, nil); err == nil {
		t.Fatal("unknown source type must fail")
	}
	src, err := New(Config{Type: MemorySource}, nil)
	if err != nil {
		t.Fatalf("memory source: %v", err)
	}
	records, err := src.Load(context.Background())
	if err != nil || len(records) != 0 {
		t.Fatalf("empty memory source: %v, %v", records, err)
	}
}
