// Package record streams simulation frames to and from msgpack files
// A stream is one Header followed by any number of Frame values
package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/chaos-merge/engine"
)

// Magic identifies a recording stream and its format version
const Magic = "chaos-merge/1"

// ErrBadHeader is returned when a stream does not start with a valid header
var ErrBadHeader = errors.New("record: bad header")

// Header describes the recorded session
type Header struct {
	Magic   string    `msgpack:"magic"`
	Session string    `msgpack:"session"`
	Variant string    `msgpack:"variant"`
	Width   float64   `msgpack:"w"`
	Height  float64   `msgpack:"h"`
	Seed    uint64    `msgpack:"seed"`
	Created time.Time `msgpack:"created"`
}

// Frame is one recorded draw list
type Frame struct {
	Tick       uint64          `msgpack:"tick"`
	Population int             `msgpack:"pop"`
	Sprites    []engine.Sprite `msgpack:"sprites"`
}

// Writer appends frames to a stream
// Not safe for concurrent use
type Writer struct {
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	header Header
	frames uint64
}

// NewWriter writes the header and returns a frame writer
// Session and Created are filled in when empty
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	h.Magic = Magic
	if h.Session == "" {
		h.Session = uuid.New().String()
	}
	if h.Created.IsZero() {
		h.Created = time.Now().UTC()
	}

	buf := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(buf)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("record: write header: %w", err)
	}
	return &Writer{buf: buf, enc: enc, header: h}, nil
}

// Header returns the header as written
func (w *Writer) Header() Header {
	return w.header
}

// Frames returns the number of frames written
func (w *Writer) Frames() uint64 {
	return w.frames
}

// WriteFrame appends one engine frame
func (w *Writer) WriteFrame(f engine.Frame) error {
	rec := Frame{Tick: f.Tick, Population: f.Population, Sprites: f.Sprites}
	if err := w.enc.Encode(&rec); err != nil {
		return fmt.Errorf("record: write frame %d: %w", f.Tick, err)
	}
	w.frames++
	return nil
}

// Flush pushes buffered frames to the underlying writer
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Reader iterates frames of a stream
type Reader struct {
	dec    *msgpack.Decoder
	header Header
}

// NewReader reads and validates the header
func NewReader(r io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if h.Magic != Magic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadHeader, h.Magic)
	}
	if _, err := uuid.Parse(h.Session); err != nil {
		return nil, fmt.Errorf("%w: session %q", ErrBadHeader, h.Session)
	}
	return &Reader{dec: dec, header: h}, nil
}

// Header returns the stream header
func (r *Reader) Header() Header {
	return r.header
}

// Next decodes the next frame, returns io.EOF at the end of the stream
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("record: read frame: %w", err)
	}
	return f, nil
}
