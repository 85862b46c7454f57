package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestServerStatusRequest(t *testing.T) {
	in := strings.NewReader(`{"type":"status","id":"1"}` + "\n")
	var out bytes.Buffer
	s := NewServer(in, &out, 1, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "1" {
		t.Errorf("expected id to echo back, got %q", resp.ID)
	}
}

func TestServerShutdownRequestStopsTheLoop(t *testing.T) {
	in := strings.NewReader(`{"type":"shutdown","id":"9"}` + "\n" + `{"type":"status","id":"should-not-run"}` + "\n")
	var out bytes.Buffer
	s := NewServer(in, &out, 1, nil)

	err := s.Run(context.Background())
	if !errors.Is(err, ErrShutdown) {
		t.Fatalf("expected ErrShutdown, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one response before shutdown stopped the loop, got %d", len(lines))
	}
}

func TestServerUnknownRequestTypeReportsError(t *testing.T) {
	in := strings.NewReader(`{"type":"bogus","id":"2"}` + "\n")
	var out bytes.Buffer
	s := NewServer(in, &out, 1, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == "" {
		t.Errorf("expected an error field for an unrecognized request type")
	}
}

func TestServerMalformedJSONReportsErrorAndContinues(t *testing.T) {
	in := strings.NewReader("not json\n" + `{"type":"status","id":"3"}` + "\n")
	var out bytes.Buffer
	s := NewServer(in, &out, 1, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected a response for the malformed line plus the valid one, got %d", len(lines))
	}
}

func TestServerCheckRequestWithoutResolveHookReportsError(t *testing.T) {
	in := strings.NewReader(`{"type":"check","id":"4","files":{"a.ts":"let x = 1;"}}` + "\n")
	var out bytes.Buffer
	s := NewServer(in, &out, 1, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == "" {
		t.Errorf("expected an error when no Resolve hook is configured")
	}
}
