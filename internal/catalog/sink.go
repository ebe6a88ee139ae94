package catalog

import (
	"fmt"
	"io"
	"strings"
)

// Sink receives rendered catalogue entries in order.
type Sink interface {
	WriteBlock(block string) error
}

// WriterSink writes each entry to an io.Writer.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a Sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteBlock implements Sink.
func (s *WriterSink) WriteBlock(block string) error {
	_, err := io.WriteString(s.w, block)
	if err != nil {
		return fmt.Errorf("writing catalogue entry: %w", err)
	}

	return nil
}

// CollectSink keeps entries in memory.
type CollectSink struct {
	Blocks []string
}

// WriteBlock implements Sink.
func (s *CollectSink) WriteBlock(block string) error {
	s.Blocks = append(s.Blocks, block)
	return nil
}

// String returns all collected entries concatenated.
func (s *CollectSink) String() string {
	return strings.Join(s.Blocks, "")
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(block string) error

// WriteBlock implements Sink.
func (f SinkFunc) WriteBlock(block string) error {
	return f(block)
}
