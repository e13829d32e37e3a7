package writer

import (
	"fmt"
	"strconv"
	"strings"
)

// writeXref emits the cross-reference section: the free entry for object 0
// at generation 65535, then one in-use entry per object with its ten-digit
// zero-padded offset.
func writeXref(b *strings.Builder, offsets []int64) {
	fmt.Fprintf(b, "xref\n0 %d\n", len(offsets)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(b, "%010d 00000 n \n", off)
	}
}

func writeTrailer(b *strings.Builder, objectCount, root, info int, startXref int64) {
	b.WriteString("trailer\n<< /Size ")
	b.WriteString(strconv.Itoa(objectCount + 1))
	b.WriteString(" /Root ")
	b.WriteString(ref(root))
	if info != 0 {
		b.WriteString(" /Info ")
		b.WriteString(ref(info))
	}
	fmt.Fprintf(b, " >>\nstartxref\n%d\n%%%%EOF\n", startXref)
}

// verify re-scans the assembled file against its own bookkeeping: every
// recorded offset must land on that object's "N 0 obj" line, the startxref
// offset must land on the xref keyword, and the emitted table entries must
// decode back to the recorded offsets. Drift anywhere here would produce a
// file whose xref table is structurally present but points at the wrong
// bytes.
func verify(pdf string, objects []Object, offsets []int64, startXref int64) error {
	for i, o := range objects {
		off := offsets[i]
		if off < 0 || off >= int64(len(pdf)) {
			return &AssemblyError{Msg: fmt.Sprintf("object %d offset %d out of bounds", o.Number, off)}
		}
		want := strconv.Itoa(o.Number) + " 0 obj"
		if !strings.HasPrefix(pdf[off:], want) {
			return &AssemblyError{Msg: fmt.Sprintf("offset %d does not start object %d", off, o.Number)}
		}
	}
	if !strings.HasPrefix(pdf[startXref:], "xref") {
		return &AssemblyError{Msg: fmt.Sprintf("startxref %d does not start the xref section", startXref)}
	}
	parsed, err := parseXref(pdf, startXref)
	if err != nil {
		return &AssemblyError{Msg: err.Error()}
	}
	for i, o := range objects {
		got, ok := parsed[o.Number]
		if !ok {
			return &AssemblyError{Msg: fmt.Sprintf("object %d missing from emitted xref", o.Number)}
		}
		if got != offsets[i] {
			return &AssemblyError{Msg: fmt.Sprintf("object %d: emitted xref offset %d, recorded %d", o.Number, got, offsets[i])}
		}
	}
	return nil
}

// findStartXref locates the startxref offset near the end of a file.
func findStartXref(pdf string) (int64, error) {
	tail := pdf
	if len(tail) > 1024 {
		tail = tail[len(tail)-1024:]
	}
	idx := strings.LastIndex(tail, "startxref")
	if idx < 0 {
		return 0, fmt.Errorf("writer: startxref not found")
	}
	fields := strings.Fields(tail[idx+len("startxref"):])
	if len(fields) == 0 {
		return 0, fmt.Errorf("writer: startxref has no offset")
	}
	off, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("writer: invalid startxref offset %q: %w", fields[0], err)
	}
	return off, nil
}

// parseXref reads a traditional cross-reference table back into a map of
// object number to byte offset. In-use entries only; the free entry for
// object 0 is skipped.
func parseXref(pdf string, offset int64) (map[int]int64, error) {
	if offset < 0 || offset >= int64(len(pdf)) {
		return nil, fmt.Errorf("writer: xref offset %d out of bounds", offset)
	}
	fields := strings.Fields(pdf[offset:])
	if len(fields) == 0 || fields[0] != "xref" {
		return nil, fmt.Errorf("writer: no xref keyword at offset %d", offset)
	}
	fields = fields[1:]

	table := make(map[int]int64)
	for len(fields) >= 2 && fields[0] != "trailer" {
		start, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("writer: xref subsection start %q: %w", fields[0], err)
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("writer: xref subsection count %q: %w", fields[1], err)
		}
		fields = fields[2:]
		if len(fields) < 3*count {
			return nil, fmt.Errorf("writer: truncated xref subsection at object %d", start)
		}
		for i := 0; i < count; i++ {
			off, err := strconv.ParseInt(fields[3*i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("writer: xref entry offset %q: %w", fields[3*i], err)
			}
			if fields[3*i+2] == "n" {
				table[start+i] = off
			}
		}
		fields = fields[3*count:]
	}
	return table, nil
}
