package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	_ = GitCommit
	_ = GitMessage
	_ = BuildDate
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origMsg, origDate := Version, GitCommit, GitMessage, BuildDate
	defer func() {
		Version, GitCommit, GitMessage, BuildDate = origVersion, origCommit, origMsg, origDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	GitMessage = "fix: narrow union types"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if GitMessage != "fix: narrow union types" {
		t.Errorf("GitMessage = %q, want %q", GitMessage, "fix: narrow union types")
	}
	if BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2024-01-15T10:30:00Z")
	}
}

func TestVersionString_VersionOnly(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version, GitCommit, BuildDate = "1.0.0", "", ""
	if got := VersionString(); got != "1.0.0" {
		t.Errorf("VersionString() = %q, want %q", got, "1.0.0")
	}
}

func TestVersionString_WithCommitAndDate(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.0.0"
	GitCommit = "abcdef0123456789"
	BuildDate = "2024-01-15"

	got := VersionString()
	if !strings.Contains(got, "1.0.0") {
		t.Errorf("VersionString() = %q, want it to contain version", got)
	}
	if !strings.Contains(got, "abcdef012345") || strings.Contains(got, "abcdef0123456789") {
		t.Errorf("VersionString() = %q, want commit truncated to 12 chars", got)
	}
	if !strings.Contains(got, "2024-01-15") {
		t.Errorf("VersionString() = %q, want it to contain build date", got)
	}
}

func TestVersionString_ShortCommitNotTruncated(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version, GitCommit, BuildDate = "1.0.0", "abc123", ""
	if got := VersionString(); !strings.Contains(got, "(abc123)") {
		t.Errorf("VersionString() = %q, want short commit kept whole", got)
	}
}

func TestBuildInfo_RoundTrip(t *testing.T) {
	origVersion, origCommit, origMsg, origDate := Version, GitCommit, GitMessage, BuildDate
	defer func() {
		Version, GitCommit, GitMessage, BuildDate = origVersion, origCommit, origMsg, origDate
	}()

	Version, GitCommit, GitMessage, BuildDate = "2.0.0", "deadbeef", "add narrowing", "2024-06-01"
	info := BuildInfo()
	if info.Version != "2.0.0" || info.GitCommit != "deadbeef" || info.GitMessage != "add narrowing" || info.BuildDate != "2024-06-01" {
		t.Errorf("BuildInfo() = %+v, fields did not round-trip from package vars", info)
	}
}

func TestInfo_String(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "3.0.0"
	info := BuildInfo()
	if got := info.String(); !strings.Contains(got, "3.0.0") {
		t.Errorf("Info.String() = %q, want it to contain version", got)
	}
}

func BenchmarkVersionString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = VersionString()
	}
}
