package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/rshade/gridkit/internal/logging"
)

// Stdin is the path that reads rows from standard input.
const Stdin = "-"

// ErrNotObject is returned when a row is not a JSON object.
var ErrNotObject = errors.New("row is not a JSON object")

// maxLineBytes bounds a single NDJSON line.
const maxLineBytes = 16 << 20

// ReadRows decodes rows from a JSON array or from newline-delimited JSON
// objects. Numbers are kept as json.Number so they render as written.
func ReadRows(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if first == '[' {
		return readArray(br)
	}
	return readLines(br)
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

func readArray(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding row array: %w", err)
	}
	out := make([]Record, 0, len(raw))
	for i, m := range raw {
		rec, err := decodeRecord(m)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func readLines(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var out []Record
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		rec, err := decodeRecord(b)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return out, nil
}

func decodeRecord(b []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Record(m), nil
}

// LoadRows reads rows from a file, or from stdin when path is Stdin.
func LoadRows(ctx context.Context, path string) ([]Record, error) {
	log := logging.FromContext(ctx)

	var r io.Reader
	if path == Stdin {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening rows: %w", err)
		}
		defer f.Close()
		r = f
	}

	rows, err := ReadRows(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug().
		Str("component", "dataset").
		Str("path", path).
		Int("rows", len(rows)).
		Msg("rows loaded")
	return rows, nil
}

// AssignIDs gives every row without an id the id "#<n>", n being its
// 1-based position. It returns how many ids were assigned.
func AssignIDs(rows []Record, idField string) int {
	if idField == "" {
		idField = DefaultIDField
	}
	assigned := 0
	for i, r := range rows {
		if r.Text(idField) != "" {
			continue
		}
		r[idField] = "#" + strconv.Itoa(i+1)
		assigned++
	}
	return assigned
}

func logAssigned(log *zerolog.Logger, n int) {
	if n == 0 {
		return
	}
	log.Warn().
		Str("component", "dataset").
		Int("rows", n).
		Msg("rows without id were given positional ids")
}
