// Package stripegen generates the typed Go surface of the API from the
// vendor's OpenAPI description.
//
// The pipeline loads the description into the intermediate representation
// (package ir), validates it, and hands it to the Go emitter (package
// golang), which writes through an output sink (package sink):
//
//	stripegen.FromSpec("api/spec3.json").
//	    Rename("PostCustomersCustomerSourcesIdVerify", "VerifyCustomerSource").
//	    ToDir(ctx, "api")
package stripegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/broady/stripe/stripegen/golang"
)

// Config holds the configuration for code generation. It is usually read
// from a stripegen.yaml file next to the generated package.
type Config struct {
	// Spec is the path of the OpenAPI description, relative to the config
	// file when loaded with LoadConfig.
	Spec string `yaml:"spec" validate:"required"`

	// Out is the output directory, relative to the config file.
	Out string `yaml:"out" validate:"required"`

	// Package is the Go package name of the output.
	// Default: "api"
	Package string `yaml:"package" validate:"omitempty,alphanum"`

	// Runtime is the import path of the client runtime.
	// Default: "github.com/broady/stripe"
	Runtime string `yaml:"runtime"`

	// Names overrides builder names by operation id.
	// e.g. {"PostCustomersCustomerSourcesIdVerify": "VerifyCustomerSource"}
	Names map[string]string `yaml:"names" validate:"dive,keys,required,endkeys,required,alphanum"`

	// Strict turns description warnings into errors.
	Strict bool `yaml:"strict"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads a YAML config file. Relative paths inside it are
// resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if cfg.Spec != "" && !filepath.IsAbs(cfg.Spec) {
		cfg.Spec = filepath.Join(dir, cfg.Spec)
	}
	if cfg.Out != "" && !filepath.IsAbs(cfg.Out) {
		cfg.Out = filepath.Join(dir, cfg.Out)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks required fields and name overrides.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
func applyConfigDefaults(cfg *Config) *Config {
	out := *cfg
	if out.Package == "" {
		out.Package = golang.DefaultPackage
	}
	if out.Runtime == "" {
		out.Runtime = golang.DefaultRuntime
	}
	return &out
}
