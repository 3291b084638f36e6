package sse

import (
	"strings"
	"testing"
)

func TestScannerParsesEvents(t *testing.T) {
	payload := strings.Join([]string{
		": welcome",
		"event: tick",
		"id: 1",
		"data: first",
		"",
		"data: line one",
		"data: line two",
		"",
	}, "\n")

	s := NewScanner(strings.NewReader(payload))

	if !s.Next() {
		t.Fatalf("expected a first event, got none (err: %v)", s.Err())
	}
	want := Event{Type: "tick", Data: "first", ID: "1"}
	if s.Event() != want {
		t.Fatalf("expected %+v, got %+v", want, s.Event())
	}

	if !s.Next() {
		t.Fatalf("expected a second event, got none (err: %v)", s.Err())
	}
	want = Event{Data: "line one\nline two"}
	if s.Event() != want {
		t.Fatalf("expected %+v, got %+v", want, s.Event())
	}

	if s.Next() {
		t.Fatalf("expected no further events, got %+v", s.Event())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("expected no scan error, got %v", err)
	}
}

func TestScannerFlushesFinalEventAtEOF(t *testing.T) {
	s := NewScanner(strings.NewReader("event: done\ndata: bye"))

	if !s.Next() {
		t.Fatalf("expected the unterminated final event, got none (err: %v)", s.Err())
	}
	want := Event{Type: "done", Data: "bye"}
	if s.Event() != want {
		t.Fatalf("expected %+v, got %+v", want, s.Event())
	}
	if s.Next() {
		t.Fatal("expected the scanner to be drained")
	}
}

func TestScannerSkipsCommentsAndUnknownFields(t *testing.T) {
	payload := ": keep-alive\n\nretry: 1000\ndata: payload\n\n"
	s := NewScanner(strings.NewReader(payload))

	if !s.Next() {
		t.Fatalf("expected an event, got none (err: %v)", s.Err())
	}
	if got := s.Event(); got.Data != "payload" || got.Type != "" {
		t.Fatalf("expected bare data event, got %+v", got)
	}
}
