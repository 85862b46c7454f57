package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest file name, the spec's equivalent of the teacher's surge.toml.
const ManifestName = "tsz.toml"

// PackageTable is the required [package] table every manifest must carry,
// mirroring the teacher's packageConfig.
type PackageTable struct {
	Name string `toml:"name"`
}

// ProjectConfig is the decoded shape of a tsz.toml: a required [package]
// table plus an optional [options] table holding SolverConfig (§6.3).
type ProjectConfig struct {
	Package PackageTable `toml:"package"`
	Options SolverConfig `toml:"options"`
}

// Manifest is a located, decoded tsz.toml plus the directory it was found
// in (the project root). [package] holds no file paths, so nothing is
// resolved against Root here.
type Manifest struct {
	Path   string
	Root   string
	Config ProjectConfig
}

// FindManifest walks up from startDir looking for tsz.toml, the way the
// teacher's FindSurgeToml walks up looking for surge.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest locates and decodes tsz.toml starting from startDir. ok is
// false (with a nil error) when no manifest exists anywhere up the tree,
// letting a caller fall back to an explicit file list on the command line.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := decodeProjectConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func decodeProjectConfig(path string) (ProjectConfig, error) {
	var cfg ProjectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return ProjectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return ProjectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	cfg.Options = cfg.Options.ApplyStrictDefaults(explicitStrictFields(meta))
	return cfg, nil
}

// explicitStrictFields reports which strict-family options the manifest's
// [options] table set explicitly, so ApplyStrictDefaults doesn't clobber
// an explicit override alongside `strict = true`.
func explicitStrictFields(meta toml.MetaData) map[string]bool {
	names := []string{
		"strictNullChecks", "strictFunctionTypes", "strictPropertyInitialization",
		"strictBindCallApply", "noImplicitAny", "noImplicitThis",
		"useUnknownInCatchVariables", "alwaysStrict",
	}
	explicit := make(map[string]bool, len(names))
	for _, n := range names {
		explicit[n] = meta.IsDefined("options", n)
	}
	return explicit
}
