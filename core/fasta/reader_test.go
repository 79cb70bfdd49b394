// core/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
)

func TestRead(t *testing.T) {
	in := strings.NewReader(">pathogenic|strainA desc\nMKV\n>non_pathogenic|strainB\nMRV\n")
	recs, err := Read(context.Background(), in, alphabet.Protein)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "pathogenic|strainA" {
		t.Errorf("id = %q", recs[0].ID)
	}
	if recs[0].Seq != "MKV" || recs[1].Seq != "MRV" {
		t.Errorf("seqs = %q, %q", recs[0].Seq, recs[1].Seq)
	}
}

func TestReadMultiline(t *testing.T) {
	in := strings.NewReader(">s\nACGT\nACGT\n")
	recs, err := Read(context.Background(), in, alphabet.DNA)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "ACGTACGT" {
		t.Fatalf("recs = %+v", recs)
	}
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := strings.NewReader(">a\nACGT\n>b\nACGT\n")
	if _, err := Read(ctx, in, alphabet.DNA); err == nil {
		t.Fatal("want error from cancelled context")
	}
}

func TestReadPathGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">s\nACGTACGT\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadPath(context.Background(), path, alphabet.DNA)
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "ACGTACGT" {
		t.Fatalf("recs = %+v", recs)
	}
}

// Gzip is detected from the stream, so the extension does not matter.
func TestReadPathGzipWithoutSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.fa")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">s\nMKVL\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadPath(context.Background(), path, alphabet.Protein)
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "MKVL" {
		t.Fatalf("recs = %+v", recs)
	}
}

func TestReadPathMissing(t *testing.T) {
	if _, err := ReadPath(context.Background(), "no/such.fa", alphabet.DNA); err == nil {
		t.Fatal("want error for missing file")
	}
}
