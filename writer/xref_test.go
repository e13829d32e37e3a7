package writer

import (
	"strings"
	"testing"
)

func TestWriteXrefFormat(t *testing.T) {
	var b strings.Builder
	writeXref(&b, []int64{9, 123, 4567})
	want := "xref\n0 4\n" +
		"0000000000 65535 f \n" +
		"0000000009 00000 n \n" +
		"0000000123 00000 n \n" +
		"0000004567 00000 n \n"
	if b.String() != want {
		t.Errorf("writeXref =\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestParseXrefRoundTrip(t *testing.T) {
	offsets := []int64{9, 87, 150, 203}
	var b strings.Builder
	b.WriteString("padding before the table ")
	tableAt := int64(b.Len())
	writeXref(&b, offsets)
	b.WriteString("trailer\n<< /Size 5 /Root 1 0 R >>\n")

	table, err := parseXref(b.String(), tableAt)
	if err != nil {
		t.Fatalf("parseXref: %v", err)
	}
	if len(table) != len(offsets) {
		t.Fatalf("parsed %d entries, want %d", len(table), len(offsets))
	}
	for i, off := range offsets {
		if table[i+1] != off {
			t.Errorf("object %d: parsed %d, want %d", i+1, table[i+1], off)
		}
	}
	if _, ok := table[0]; ok {
		t.Error("free entry for object 0 must be skipped")
	}
}

func TestParseXrefErrors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int64
	}{
		{"offset out of bounds", "xref", 99},
		{"missing keyword", "not a table", 0},
		{"truncated subsection", "xref\n0 3\n0000000000 65535 f \n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseXref(tt.text, tt.offset); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFindStartXref(t *testing.T) {
	pdf := "%PDF-1.4\njunk\nxref\n...\nstartxref\n1234\n%%EOF\n"
	off, err := findStartXref(pdf)
	if err != nil {
		t.Fatalf("findStartXref: %v", err)
	}
	if off != 1234 {
		t.Errorf("offset = %d, want 1234", off)
	}

	if _, err := findStartXref("no marker here"); err == nil {
		t.Error("expected error when startxref is absent")
	}
}

func TestVerifyDetectsDrift(t *testing.T) {
	objects := []Object{{Number: 1, Body: "<< >>"}}
	pdf := "%PDF-1.4\n1 0 obj\n<< >>\nendobj\nxref\n0 2\n0000000000 65535 f \n0000000009 00000 n \ntrailer\n<< /Size 2 /Root 1 0 R >>\nstartxref\n30\n%%EOF\n"
	objAt := int64(strings.Index(pdf, "1 0 obj"))
	xrefAt := int64(strings.Index(pdf, "xref"))

	if err := verify(pdf, objects, []int64{objAt}, xrefAt); err != nil {
		t.Fatalf("verify rejected a correct file: %v", err)
	}

	// A recorded offset one byte off must be caught.
	err := verify(pdf, objects, []int64{objAt + 1}, xrefAt)
	if err == nil {
		t.Fatal("expected AssemblyError for drifted offset")
	}
	if _, ok := err.(*AssemblyError); !ok {
		t.Errorf("got %T, want *AssemblyError", err)
	}

	// startxref pointing into the object section must be caught.
	if err := verify(pdf, objects, []int64{9}, 9); err == nil {
		t.Error("expected AssemblyError for bad startxref")
	}
}
