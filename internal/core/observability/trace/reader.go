package trace

import (
	"errors"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Filter selects records. Empty fields match everything.
type Filter struct {
	Type   string
	Object string
}

func (f Filter) matches(r Record) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Object != "" && r.Object != f.Object {
		return false
	}
	return true
}

// Reader streams records from a CBOR trace.
type Reader struct {
	decoder *cbor.Decoder
	closer  io.Closer
	filter  Filter
}

func NewReader(r io.Reader, filter Filter) *Reader {
	rd := &Reader{decoder: newDecoder(r), filter: filter}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	return rd
}

// OpenFile opens a trace file written by a file Recorder.
func OpenFile(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewReader(f, filter), nil
}

// Next returns the next matching record, or io.EOF at the end of the trace.
func (r *Reader) Next() (Record, error) {
	for {
		var rec Record
		if err := r.decoder.Decode(&rec); err != nil {
			return Record{}, err
		}
		if r.filter.matches(rec) {
			return rec, nil
		}
	}
}

// ReadAll returns every remaining matching record.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
