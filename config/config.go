// Package config holds the tunable numeric policy for the localization and
// face-weight routines. Values load from YAML; zero-valued fields fall back
// to the defaults.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Params collects the numeric knobs of the module.
type Params struct {
	// MaxRetries is the number of perturbed localization attempts after the
	// direct attempt fails.
	MaxRetries int `yaml:"max_retries"`

	// PerturbRadius is the half-width, in physical units, of the uniform
	// perturbation applied per coordinate axis on retry.
	PerturbRadius float64 `yaml:"perturb_radius"`

	// NewtonMaxIter caps the Newton iterations of the inverse mapping.
	NewtonMaxIter int `yaml:"newton_max_iter"`

	// NewtonTol is the convergence tolerance on the Newton update norm.
	NewtonTol float64 `yaml:"newton_tol"`

	// AreaTol is the threshold under which a face's true area is treated as
	// degenerate.
	AreaTol float64 `yaml:"area_tol"`
}

// Default returns the parameter set matching the module's documented
// behavior: a direct attempt plus 20 perturbed retries with a 1e-4 radius.
func Default() Params {
	return Params{
		MaxRetries:    20,
		PerturbRadius: 1e-4,
		NewtonMaxIter: 30,
		NewtonTol:     1e-12,
		AreaTol:       1e-14,
	}
}

// Load reads YAML parameters from r. Fields absent from the document keep
// their default values.
func Load(r io.Reader) (Params, error) {
	p := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return Params{}, fmt.Errorf("failed to parse parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate rejects parameter sets that would break the bounded-retry or
// Newton termination guarantees.
func (p Params) Validate() error {
	if p.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative, got %d", p.MaxRetries)
	}
	if p.PerturbRadius <= 0 {
		return fmt.Errorf("perturb_radius must be positive, got %g", p.PerturbRadius)
	}
	if p.NewtonMaxIter <= 0 {
		return fmt.Errorf("newton_max_iter must be positive, got %d", p.NewtonMaxIter)
	}
	if p.NewtonTol <= 0 {
		return fmt.Errorf("newton_tol must be positive, got %g", p.NewtonTol)
	}
	if p.AreaTol < 0 {
		return fmt.Errorf("area_tol must be non-negative, got %g", p.AreaTol)
	}
	return nil
}
