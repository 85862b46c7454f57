package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/version"
)

func TestRenderVersionPretty_Minimal(t *testing.T) {
	var buf bytes.Buffer
	info := version.Info{Version: "1.2.3"}
	renderVersionPretty(&buf, info, versionOptions{})
	if !strings.Contains(buf.String(), "1.2.3") {
		t.Errorf("expected version in output, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "commit:") {
		t.Errorf("expected no commit line without showHash, got %q", buf.String())
	}
}

func TestRenderVersionPretty_FullShowsUnknownForMissingFields(t *testing.T) {
	var buf bytes.Buffer
	info := version.Info{Version: "1.2.3"}
	renderVersionPretty(&buf, info, versionOptions{showHash: true, showMessage: true, showDate: true})
	out := buf.String()
	for _, want := range []string{"commit:", "message:", "built:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	info := version.Info{Version: "1.2.3", GitCommit: "abc123"}
	if err := renderVersionJSON(&buf, info, versionOptions{showHash: true}); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if payload.Tool != "tsz" || payload.Version != "1.2.3" || payload.GitCommit != "abc123" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestValueOrUnknownJSON(t *testing.T) {
	if got := valueOrUnknownJSON(""); got != "unknown" {
		t.Errorf("valueOrUnknownJSON(\"\") = %q, want %q", got, "unknown")
	}
	if got := valueOrUnknownJSON("x"); got != "x" {
		t.Errorf("valueOrUnknownJSON(%q) = %q, want %q", "x", got, "x")
	}
}
