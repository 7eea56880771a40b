// core/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one FASTA entry. Header is the full header line without the
// leading '>' (abundance annotations like "AB=1.5" ride along in it).
type Record struct {
	Header   string
	Sequence string
}

// Read parses all records from r. Sequence lines are trimmed and
// concatenated; blank lines are skipped.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		out    []Record
		header string
		seq    strings.Builder
		have   bool
	)
	flush := func() {
		out = append(out, Record{Header: header, Sequence: seq.String()})
		seq.Reset()
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if have {
				flush()
			}
			header = strings.TrimSpace(line[1:])
			have = true
			continue
		}
		if !have {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	if have {
		flush()
	}
	return out, nil
}

// ReadPath opens path and parses all records. "-" reads stdin; gzip input is
// detected by magic number or a .gz suffix.
func ReadPath(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc)
}
