// Package source resolves the generator configuration from a config file
// and command-line flags.
package source

import (
	"errors"

	"github.com/broady/stripe/stripegen"
)

// Flags are the options shared by the gen and check commands. Flags given
// on the command line override the config file.
type Flags struct {
	Spec    string `arg:"" optional:"" help:"OpenAPI description (JSON or YAML)."`
	Config  string `help:"Config file (stripegen.yaml)." short:"c" type:"existingfile"`
	Out     string `help:"Output directory for generated files." short:"o"`
	Package string `help:"Go package name of the output." short:"p"`
	Runtime string `help:"Import path of the client runtime."`
	Strict  bool   `help:"Fail on description warnings."`
}

// Resolve returns the effective configuration.
func (f *Flags) Resolve() (*stripegen.Config, error) {
	cfg := &stripegen.Config{}
	if f.Config != "" {
		loaded, err := stripegen.LoadConfig(f.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if f.Spec != "" {
		cfg.Spec = f.Spec
	}
	if f.Out != "" {
		cfg.Out = f.Out
	}
	if f.Package != "" {
		cfg.Package = f.Package
	}
	if f.Runtime != "" {
		cfg.Runtime = f.Runtime
	}
	cfg.Strict = cfg.Strict || f.Strict

	if cfg.Spec == "" {
		return nil, errors.New("no description given: pass a spec path or --config")
	}
	if cfg.Out == "" {
		cfg.Out = "."
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
