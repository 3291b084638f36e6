package sse

import (
	"bufio"
	"io"
	"strings"
)

const maxEventSize = 1024 * 1024 // 1MB

// Event represents a server-sent event
type Event struct {
	Type string
	Data string
	ID   string
}

// Scanner reads server-sent events from a stream, one event per call to
// Next. Events are separated by blank lines; comment lines and unknown
// fields are skipped.
type Scanner struct {
	scanner *bufio.Scanner
	event   Event
}

// NewScanner creates a new SSE scanner from an io.Reader
func NewScanner(reader io.Reader) *Scanner {
	scanner := bufio.NewScanner(reader)
	buf := make([]byte, maxEventSize)
	scanner.Buffer(buf, maxEventSize)
	return &Scanner{scanner: scanner}
}

// Next advances the scanner to the next event. It returns false when the
// stream ends or reading fails; Err tells the two apart.
func (s *Scanner) Next() bool {
	event := Event{}
	seen := false
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			if seen {
				s.event = event
				return true
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}
		if v, ok := strings.CutPrefix(line, "event:"); ok {
			event.Type = strings.TrimSpace(v)
			seen = true
		} else if v, ok := strings.CutPrefix(line, "data:"); ok {
			if event.Data != "" {
				event.Data += "\n"
			}
			event.Data += strings.TrimSpace(v)
			seen = true
		} else if v, ok := strings.CutPrefix(line, "id:"); ok {
			event.ID = strings.TrimSpace(v)
			seen = true
		}
	}
	// The last event may end at EOF rather than at a blank line.
	if seen && s.scanner.Err() == nil {
		s.event = event
		return true
	}
	return false
}

// Event returns the event read by the last successful call to Next.
func (s *Scanner) Event() Event {
	return s.event
}

// Err returns any error encountered during scanning
func (s *Scanner) Err() error {
	return s.scanner.Err()
}
