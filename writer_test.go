package smtpcmd

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	smtpio "github.com/synqronlabs/smtpcmd/io"
)

func newTestWriter(out *bytes.Buffer, logs *bytes.Buffer) *Writer {
	config := DefaultWriterConfig()
	config.Logger = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewWriter(out, config)
}

func TestWriter_Transaction(t *testing.T) {
	var out, logs bytes.Buffer
	w := newTestWriter(&out, &logs)

	requests := []Request{
		Ehlo{ID: Domain("client.example.com")},
		NewMail(MustParseMailbox("sender@example.com"), BodyParam{Kind: Body8BitMIME}),
		NewRcpt(MustParseMailbox("rcpt@example.com")),
		Data{},
	}
	for _, r := range requests {
		frame, err := w.WriteRequest(r)
		if err != nil {
			t.Fatalf("WriteRequest(%v) error = %v", r.Command(), err)
		}
		if frame.HasBody != IsBodyBearing(r) {
			t.Errorf("WriteRequest(%v) HasBody = %v", r.Command(), frame.HasBody)
		}
	}

	if !w.Pending() {
		t.Fatal("expected body to be pending after DATA")
	}
	if err := w.WriteBody(strings.NewReader("Subject: test\r\n\r\n.hi\r\n")); err != nil {
		t.Fatalf("WriteBody() error = %v", err)
	}
	if w.Pending() {
		t.Error("body still pending after WriteBody")
	}
	if _, err := w.WriteRequest(Quit{}); err != nil {
		t.Fatalf("WriteRequest(QUIT) error = %v", err)
	}

	want := "EHLO client.example.com\r\n" +
		"MAIL FROM:<sender@example.com> BODY=8BITMIME\r\n" +
		"RCPT TO:<rcpt@example.com>\r\n" +
		"DATA\r\n" +
		"Subject: test\r\n\r\n..hi\r\n.\r\n" +
		"QUIT\r\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if !strings.Contains(logs.String(), "body sent") {
		t.Errorf("expected body log record, got %q", logs.String())
	}
}

func TestWriter_BodyOrdering(t *testing.T) {
	var out, logs bytes.Buffer
	w := newTestWriter(&out, &logs)

	if err := w.WriteBody(strings.NewReader("x")); !errors.Is(err, ErrBodyNotExpected) {
		t.Errorf("WriteBody() error = %v, want ErrBodyNotExpected", err)
	}

	if _, err := w.WriteRequest(Data{}); err != nil {
		t.Fatalf("WriteRequest(DATA) error = %v", err)
	}
	if _, err := w.WriteRequest(Quit{}); !errors.Is(err, ErrBodyExpected) {
		t.Errorf("WriteRequest() error = %v, want ErrBodyExpected", err)
	}
	if out.String() != "DATA\r\n" {
		t.Errorf("output = %q, want only DATA", out.String())
	}
}

func TestWriter_LineLimits(t *testing.T) {
	var out, logs bytes.Buffer
	w := newTestWriter(&out, &logs)

	long := strings.Repeat("a", 600) + ".example.com"
	_, err := w.WriteRequest(Ehlo{ID: Domain(long)})
	if !errors.Is(err, smtpio.ErrLineTooLong) {
		t.Errorf("WriteRequest() error = %v, want ErrLineTooLong", err)
	}
	if err != nil && err.Error() != "smtp: EHLO: line too long" {
		t.Errorf("WriteRequest() error = %q, want %q", err.Error(), "smtp: EHLO: line too long")
	}
	if out.Len() != 0 {
		t.Errorf("rejected command was written: %q", out.String())
	}

	// AUTH lines get the larger limit.
	a, err := NewAuth("PLAIN", strings.Repeat("A", 4000))
	if err != nil {
		t.Fatalf("NewAuth() error = %v", err)
	}
	if _, err := w.WriteRequest(a); err != nil {
		t.Errorf("WriteRequest(AUTH) error = %v", err)
	}
}

func TestWriter_LineLimitDisabled(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, &WriterConfig{MaxLineLength: -1})

	long := strings.Repeat("a", 600) + ".example.com"
	if _, err := w.WriteRequest(Ehlo{ID: Domain(long)}); err != nil {
		t.Errorf("WriteRequest() error = %v", err)
	}
}

func TestWriter_RedactsAuth(t *testing.T) {
	var out, logs bytes.Buffer
	w := newTestWriter(&out, &logs)

	a, err := NewAuth("PLAIN", "c2VjcmV0")
	if err != nil {
		t.Fatalf("NewAuth() error = %v", err)
	}
	if _, err := w.WriteRequest(a); err != nil {
		t.Fatalf("WriteRequest() error = %v", err)
	}
	if _, err := w.WriteRequest(NewAuthResponse("cGFzcw==")); err != nil {
		t.Fatalf("WriteRequest() error = %v", err)
	}

	if !strings.Contains(out.String(), "c2VjcmV0") {
		t.Error("AUTH data missing from wire output")
	}
	if strings.Contains(logs.String(), "c2VjcmV0") || strings.Contains(logs.String(), "cGFzcw==") {
		t.Errorf("AUTH data leaked into logs: %q", logs.String())
	}
	if !strings.Contains(logs.String(), "[redacted]") {
		t.Errorf("expected redaction marker in logs, got %q", logs.String())
	}
}

func TestNewWriter_NilConfig(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, nil)
	if w.config.Logger != slog.Default() {
		t.Error("expected slog.Default() logger")
	}
	if w.config.MaxLineLength != DefaultMaxLineLength {
		t.Errorf("MaxLineLength = %d, want %d", w.config.MaxLineLength, DefaultMaxLineLength)
	}
}

func TestNewWriter_NilLoggerUsesDefault(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, &WriterConfig{})
	if w.config.Logger != slog.Default() {
		t.Error("expected slog.Default() logger")
	}
	if w.config.MaxAuthLineLength != DefaultMaxAuthLineLength {
		t.Errorf("MaxAuthLineLength = %d, want %d", w.config.MaxAuthLineLength, DefaultMaxAuthLineLength)
	}
}
