// Package config decodes the options a driver passes into the checker
// (§6.3's SolverConfig) and the project manifest (a [package] table that
// carries only the package name, plus an [options] table; the manifest
// does not list entry files). It is also where SolverConfig's rule-bank flags translate 1:1
// into the narrower Config structs internal/subtype and internal/eval
// each own, mirroring the teacher's project manifest loader
// (cmd/surge/project_manifest.go) and its surge.toml discovery walk
// (internal/project/root.go).
package config

import (
	"github.com/mohsen1/tsz-sub014/internal/eval"
	"github.com/mohsen1/tsz-sub014/internal/subtype"
)

// SolverConfig is every option §6.3 lists a driver as being able to set,
// 1:1 with TSC's own compiler-option names. Drivers populate this from a
// tsz.toml [options] table or from JSON request options (§6.4); nothing in
// this package invents a name TSC doesn't already use.
type SolverConfig struct {
	Strict                       bool `toml:"strict" json:"strict"`
	StrictNullChecks              bool `toml:"strictNullChecks" json:"strictNullChecks"`
	StrictFunctionTypes           bool `toml:"strictFunctionTypes" json:"strictFunctionTypes"`
	StrictPropertyInitialization bool `toml:"strictPropertyInitialization" json:"strictPropertyInitialization"`
	StrictBindCallApply          bool `toml:"strictBindCallApply" json:"strictBindCallApply"`
	NoImplicitAny                bool `toml:"noImplicitAny" json:"noImplicitAny"`
	NoImplicitThis                bool `toml:"noImplicitThis" json:"noImplicitThis"`
	UseUnknownInCatchVariables   bool `toml:"useUnknownInCatchVariables" json:"useUnknownInCatchVariables"`
	AlwaysStrict                  bool `toml:"alwaysStrict" json:"alwaysStrict"`
	ExactOptionalPropertyTypes   bool `toml:"exactOptionalPropertyTypes" json:"exactOptionalPropertyTypes"`
	NoUncheckedIndexedAccess     bool `toml:"noUncheckedIndexedAccess" json:"noUncheckedIndexedAccess"`
	NoPropertyAccessFromIndexSignature bool `toml:"noPropertyAccessFromIndexSignature" json:"noPropertyAccessFromIndexSignature"`
	NoImplicitReturns             bool `toml:"noImplicitReturns" json:"noImplicitReturns"`
	NoFallthroughCasesInSwitch   bool `toml:"noFallthroughCasesInSwitch" json:"noFallthroughCasesInSwitch"`
	NoImplicitOverride            bool `toml:"noImplicitOverride" json:"noImplicitOverride"`
	AllowUnreachableCode          bool `toml:"allowUnreachableCode" json:"allowUnreachableCode"`
	AllowUnusedLabels             bool `toml:"allowUnusedLabels" json:"allowUnusedLabels"`

	Target                 string `toml:"target" json:"target"`
	Lib                    []string `toml:"lib" json:"lib"`
	JSX                    string `toml:"jsx" json:"jsx"`
	AllowJS                bool   `toml:"allowJs" json:"allowJs"`
	CheckJS                bool   `toml:"checkJs" json:"checkJs"`
	ExperimentalDecorators bool   `toml:"experimentalDecorators" json:"experimentalDecorators"`
	EmitDecoratorMetadata  bool   `toml:"emitDecoratorMetadata" json:"emitDecoratorMetadata"`
	IsolatedModules        bool   `toml:"isolatedModules" json:"isolatedModules"`
	VerbatimModuleSyntax   bool   `toml:"verbatimModuleSyntax" json:"verbatimModuleSyntax"`
	SkipLibCheck           bool   `toml:"skipLibCheck" json:"skipLibCheck"`

	MaxInstantiationDepth int `toml:"maxInstantiationDepth" json:"maxInstantiationDepth"`
	MaxUnionSize          int `toml:"maxUnionSize" json:"maxUnionSize"`
}

// DefaultSolverConfig mirrors TSC's non-strict defaults, with the two
// resource limits set to the spec's fixed values regardless of strictness
// (matching subtype.DefaultConfig/eval.DefaultConfig, which this struct's
// rule-bank fields are translated into 1:1).
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Target:                "ES2022",
		MaxInstantiationDepth: 100,
		MaxUnionSize:          100_000,
	}
}

// ApplyStrictDefaults turns on every strict-family flag `strict` implies
// unless the driver already set it explicitly — TSC's own rule that
// `strict: true` is shorthand for a bundle of individually-overridable
// flags. `explicit` names the fields the driver actually set in its
// source document (a toml.MetaData/json.RawMessage presence check), so an
// explicit `strictNullChecks: false` alongside `strict: true` is honored
// rather than clobbered.
func (sc SolverConfig) ApplyStrictDefaults(explicit map[string]bool) SolverConfig {
	if !sc.Strict {
		return sc
	}
	set := func(field string, p *bool) {
		if !explicit[field] {
			*p = true
		}
	}
	set("strictNullChecks", &sc.StrictNullChecks)
	set("strictFunctionTypes", &sc.StrictFunctionTypes)
	set("strictPropertyInitialization", &sc.StrictPropertyInitialization)
	set("strictBindCallApply", &sc.StrictBindCallApply)
	set("noImplicitAny", &sc.NoImplicitAny)
	set("noImplicitThis", &sc.NoImplicitThis)
	set("useUnknownInCatchVariables", &sc.UseUnknownInCatchVariables)
	set("alwaysStrict", &sc.AlwaysStrict)
	return sc
}

// SubtypeConfig translates the assignability-relevant rule banks into
// internal/subtype's own Config (§4.4.3).
func (sc SolverConfig) SubtypeConfig() subtype.Config {
	return subtype.Config{
		StrictNullChecks:           sc.StrictNullChecks,
		StrictFunctionTypes:        sc.StrictFunctionTypes,
		ExactOptionalPropertyTypes: sc.ExactOptionalPropertyTypes,
		NoUncheckedIndexedAccess:   sc.NoUncheckedIndexedAccess,
		MaxRelationDepth:           subtype.DefaultConfig().MaxRelationDepth,
	}
}

// EvalConfig translates the resource-limit rule banks into internal/eval's
// own Config (§4.8/§5); the three expansion ceilings eval owns aren't
// individually exposed in §6.3, so they stay at the spec's fixed
// defaults regardless of what a driver sets.
func (sc SolverConfig) EvalConfig() eval.Config {
	cfg := eval.DefaultConfig()
	cfg.MaxInstantiationDepth = sc.MaxInstantiationDepth
	cfg.MaxUnionSize = sc.MaxUnionSize
	cfg.NoUncheckedIndexedAccess = sc.NoUncheckedIndexedAccess
	return cfg
}
