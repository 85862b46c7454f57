package config

import (
	"os"
	"testing"
)

func TestApplyStrictDefaultsTurnsOnWholeFamily(t *testing.T) {
	sc := SolverConfig{Strict: true}
	got := sc.ApplyStrictDefaults(nil)

	if !got.StrictNullChecks || !got.StrictFunctionTypes || !got.NoImplicitAny || !got.AlwaysStrict {
		t.Errorf("expected strict:true to turn on the whole strict family, got %+v", got)
	}
}

func TestApplyStrictDefaultsHonorsExplicitOverride(t *testing.T) {
	sc := SolverConfig{Strict: true, StrictNullChecks: false}
	explicit := map[string]bool{"strictNullChecks": true}

	got := sc.ApplyStrictDefaults(explicit)

	if got.StrictNullChecks {
		t.Errorf("expected an explicit strictNullChecks:false to survive strict:true, got %+v", got)
	}
	if !got.NoImplicitAny {
		t.Errorf("expected an unset field to still pick up strict:true's default")
	}
}

func TestApplyStrictDefaultsNoopWithoutStrict(t *testing.T) {
	sc := SolverConfig{}
	got := sc.ApplyStrictDefaults(nil)

	if got.StrictNullChecks || got.NoImplicitAny {
		t.Errorf("expected no strict-family flag to turn on without strict:true, got %+v", got)
	}
}

func TestSubtypeConfigTranslatesRuleBanks(t *testing.T) {
	sc := SolverConfig{
		StrictNullChecks:           true,
		ExactOptionalPropertyTypes: true,
	}
	got := sc.SubtypeConfig()

	if !got.StrictNullChecks || !got.ExactOptionalPropertyTypes {
		t.Errorf("expected subtype.Config to mirror the solver's null-check/optional-property flags, got %+v", got)
	}
	if got.StrictFunctionTypes {
		t.Errorf("expected an unset flag to stay false")
	}
}

func TestEvalConfigTranslatesResourceLimits(t *testing.T) {
	sc := SolverConfig{MaxInstantiationDepth: 50, MaxUnionSize: 10}
	got := sc.EvalConfig()

	if got.MaxInstantiationDepth != 50 || got.MaxUnionSize != 10 {
		t.Errorf("expected eval.Config to carry the solver's resource limits, got %+v", got)
	}
	if got.MaxConditionalTail == 0 || got.MaxTemplateExpansion == 0 {
		t.Errorf("expected the limits §6.3 doesn't expose to keep eval's own defaults, got %+v", got)
	}
}

func TestFindManifestWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root+"/tsz.toml", "[package]\nname = \"demo\"\n")
	sub := root + "/a/b"
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := FindManifest(sub)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if !ok {
		t.Fatalf("expected FindManifest to find a manifest in an ancestor directory")
	}
	if path != root+"/tsz.toml" {
		t.Errorf("expected to find %s, got %s", root+"/tsz.toml", path)
	}
}

func TestLoadManifestRejectsMissingPackageName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root+"/tsz.toml", "[package]\n")

	_, _, err := LoadManifest(root)
	if err == nil {
		t.Fatalf("expected an error for a [package] table missing name")
	}
}

func TestLoadManifestAppliesStrictFromOptionsTable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root+"/tsz.toml", "[package]\nname = \"demo\"\n\n[options]\nstrict = true\n")

	m, ok, err := LoadManifest(root)
	if err != nil || !ok {
		t.Fatalf("LoadManifest: ok=%v err=%v", ok, err)
	}
	if !m.Config.Options.StrictNullChecks {
		t.Errorf("expected [options] strict=true to cascade into strictNullChecks")
	}
}

func TestLoadManifestNotFoundReturnsFalseNoError(t *testing.T) {
	root := t.TempDir()
	_, ok, err := LoadManifest(root)
	if err != nil {
		t.Fatalf("expected no error when no manifest exists, got %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false when no manifest exists")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
