package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = ` Date ,OPEN,HIGH,LOW,CLOSE ,VOLUME
15-Jan-24,"2,480.00","2,515.00","2,470.00","2,500.50","1,23,456"
16-Jan-24,"2,502.00","2,530.00","2,495.00","2,512.00","98,765"
17-Jan-24,"2,512.00","2,520.00","2,480.00",N/A,"1,11,000"
18-Jan-24,"2,505.00","2,540.00","2,500.00","2,531.25","1,05,500"
`

func writeSample(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadRowsPreservesRawHeaders(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	// Raw keys keep their whitespace; cleaning them is the
	// normalizer's job.
	if _, ok := rows[0][" Date "]; !ok {
		t.Error("raw header \" Date \" not preserved")
	}
	if rows[0]["CLOSE "] != "2,500.50" {
		t.Errorf("close cell = %q", rows[0]["CLOSE "])
	}
}

func TestSymbolFromFilename(t *testing.T) {
	cases := map[string]string{
		"RELIANCE-EQ.csv":        "RELIANCE",
		"/data/HDFCBANK-EQ.csv":  "HDFCBANK",
		"infosys-eq.csv":         "INFOSYS",
		"NIFTY50.csv":            "NIFTY50",
	}
	for path, want := range cases {
		if got := SymbolFromFilename(path); got != want {
			t.Errorf("SymbolFromFilename(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestLoadSeries(t *testing.T) {
	path := writeSample(t, "RELIANCE-EQ.csv")
	series, err := LoadSeries(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Symbol != "RELIANCE" {
		t.Errorf("symbol = %q", series.Symbol)
	}
	// The N/A close row drops.
	if series.Len() != 3 {
		t.Fatalf("kept %d rows, want 3", series.Len())
	}
	if series.LatestClose() != 2531.25 {
		t.Errorf("latest close = %v", series.LatestClose())
	}
}

func TestFileSource(t *testing.T) {
	path := writeSample(t, "HDFCBANK-EQ.csv")
	src := NewFileSource(path)
	if src.Symbol() != "HDFCBANK" {
		t.Errorf("symbol = %q", src.Symbol())
	}
	rows, err := src.Rows(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("got %d rows", len(rows))
	}
}

func TestLoadPortfolioIsolatesFailures(t *testing.T) {
	good := writeSample(t, "RELIANCE-EQ.csv")
	missing := filepath.Join(t.TempDir(), "GHOST-EQ.csv")

	results := LoadPortfolio(context.Background(), []FileSpec{
		{Path: good, Shares: 50},
		{Path: missing, Shares: 100},
	})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].OK() {
		t.Fatalf("good file failed: %v", results[0].Err)
	}
	if results[0].Series.Len() != 3 {
		t.Errorf("good series kept %d rows", results[0].Series.Len())
	}
	if results[1].OK() {
		t.Fatal("missing file should fail")
	}
	if results[1].Position.Symbol != "GHOST" {
		t.Errorf("failed result keeps its symbol, got %q", results[1].Position.Symbol)
	}
}
