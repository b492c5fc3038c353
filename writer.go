package sqlprep

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrWriterConsumed is returned when a writer is used after its result was taken
var ErrWriterConsumed = errors.New("sql writer already consumed")

const initialBufferSize = 256

// SQLWriter accumulates SQL text and bound parameters.
// A writer is consumed by Result; every later call fails with [ErrWriterConsumed].
type SQLWriter interface {
	io.Writer
	io.StringWriter

	// PushParam binds a value at the current position
	PushParam(v Value, qb QueryBuilder) error

	// Result consumes the writer and returns the SQL text
	Result() (string, error)
}

var (
	_ SQLWriter = (*StringWriter)(nil)
	_ SQLWriter = (*CollectingWriter)(nil)
)

// StringWriter writes every parameter as an inline literal.
// The result can be run without bind parameters or written to a log.
type StringWriter struct {
	buf      strings.Builder
	consumed bool
}

func NewStringWriter() *StringWriter {
	w := &StringWriter{}
	w.buf.Grow(initialBufferSize)
	return w
}

func (w *StringWriter) Write(p []byte) (int, error) {
	if w.consumed {
		return 0, ErrWriterConsumed
	}
	return w.buf.Write(p)
}

func (w *StringWriter) WriteString(s string) (int, error) {
	if w.consumed {
		return 0, ErrWriterConsumed
	}
	return w.buf.WriteString(s)
}

// PushParam writes the literal form of v as given by qb
func (w *StringWriter) PushParam(v Value, qb QueryBuilder) error {
	if w.consumed {
		return ErrWriterConsumed
	}
	w.buf.WriteString(qb.ValueToString(v))
	return nil
}

func (w *StringWriter) Result() (string, error) {
	if w.consumed {
		return "", ErrWriterConsumed
	}
	w.consumed = true

	s := w.buf.String()
	w.buf = strings.Builder{}
	return s, nil
}

// CollectingWriter writes a placeholder for every parameter and keeps the
// values aside, in order, for a parameterized query API.
type CollectingWriter struct {
	buf      strings.Builder
	marker   string
	numbered bool
	counter  int
	values   Values
	consumed bool
}

// NewCollectingWriter creates a writer emitting marker, followed by the
// 1-based position of the value when numbered is true
func NewCollectingWriter(marker string, numbered bool) *CollectingWriter {
	w := &CollectingWriter{marker: marker, numbered: numbered}
	w.buf.Grow(initialBufferSize)
	return w
}

// CollectorFor creates a [CollectingWriter] using the placeholder syntax of qb
func CollectorFor(qb QueryBuilder) *CollectingWriter {
	return NewCollectingWriter(qb.Placeholder())
}

func (w *CollectingWriter) Write(p []byte) (int, error) {
	if w.consumed {
		return 0, ErrWriterConsumed
	}
	return w.buf.Write(p)
}

func (w *CollectingWriter) WriteString(s string) (int, error) {
	if w.consumed {
		return 0, ErrWriterConsumed
	}
	return w.buf.WriteString(s)
}

// PushParam writes a placeholder and records v.
// The placeholder syntax is the writer's own; qb is not consulted.
func (w *CollectingWriter) PushParam(v Value, _ QueryBuilder) error {
	if w.consumed {
		return ErrWriterConsumed
	}

	w.counter++
	w.buf.WriteString(w.marker)
	if w.numbered {
		w.buf.WriteString(strconv.Itoa(w.counter))
	}
	w.values = append(w.values, v)

	return nil
}

// Len is the number of values collected so far
func (w *CollectingWriter) Len() int {
	return len(w.values)
}

func (w *CollectingWriter) Result() (string, error) {
	s, _, err := w.Parts()
	return s, err
}

// Parts consumes the writer and returns the templated SQL and its values
func (w *CollectingWriter) Parts() (string, Values, error) {
	if w.consumed {
		return "", nil, ErrWriterConsumed
	}
	w.consumed = true

	s, values := w.buf.String(), w.values
	w.buf, w.values = strings.Builder{}, nil

	return s, values, nil
}
