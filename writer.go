package smtpcmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	smtpio "github.com/synqronlabs/smtpcmd/io"
)

// Writer sends rendered requests over a stream and, after DATA, the
// dot-stuffed message body. It does not read replies; the caller must
// wait for the 354 reply between WriteRequest(Data{}) and WriteBody.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w       *bufio.Writer
	config  WriterConfig
	buf     []byte
	pending bool
}

// NewWriter returns a Writer on w. A nil config uses DefaultWriterConfig.
func NewWriter(w io.Writer, config *WriterConfig) *Writer {
	if config == nil {
		config = DefaultWriterConfig()
	}
	return &Writer{
		w:      bufio.NewWriter(w),
		config: config.withDefaults(),
	}
}

// WriteRequest renders r, writes it and flushes. The returned frame tells
// whether a body must follow. While a body is pending every request is
// rejected with ErrBodyExpected.
func (w *Writer) WriteRequest(r Request) (Frame, error) {
	if w.pending {
		return Frame{}, ErrBodyExpected
	}

	frame := FrameOf(r)
	w.buf = r.AppendTo(w.buf[:0])

	max := w.config.MaxLineLength
	if r.Command() == CmdAuth {
		max = w.config.MaxAuthLineLength
	}
	if err := smtpio.WriteLine(w.w, w.buf, max); err != nil {
		return Frame{}, fmt.Errorf("smtp: %s: %w", r.Command(), err)
	}
	if err := w.w.Flush(); err != nil {
		return Frame{}, err
	}

	w.config.Logger.Debug("command sent",
		slog.String("command", redacted(r)),
		slog.Bool("has_body", frame.HasBody))

	w.pending = frame.HasBody
	return frame, nil
}

// WriteBody streams the message body after a body-bearing request and
// terminates it. It returns ErrBodyNotExpected if no such request is
// pending.
func (w *Writer) WriteBody(body io.Reader) error {
	if !w.pending {
		return ErrBodyNotExpected
	}
	w.pending = false

	n, err := smtpio.WriteDotStuffed(w.w, body)
	if err != nil {
		w.config.Logger.Error("body write error", slog.Any("error", err))
		return err
	}
	if err := w.w.Flush(); err != nil {
		return err
	}

	w.config.Logger.Debug("body sent", slog.Int64("size", n))
	return nil
}

// Pending reports whether a body is expected next.
func (w *Writer) Pending() bool {
	return w.pending
}
