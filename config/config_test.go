package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, 20, p.MaxRetries)
	assert.Equal(t, 1e-4, p.PerturbRadius)
	require.NoError(t, p.Validate())
}

func TestLoad(t *testing.T) {
	doc := `
max_retries: 5
perturb_radius: 1e-3
`
	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 5, p.MaxRetries)
	assert.Equal(t, 1e-3, p.PerturbRadius)

	// Unset fields keep defaults
	assert.Equal(t, Default().NewtonMaxIter, p.NewtonMaxIter)
	assert.Equal(t, Default().AreaTol, p.AreaTol)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"NegativeRetries": "max_retries: -1",
		"ZeroRadius":      "perturb_radius: 0",
		"ZeroNewtonIter":  "newton_max_iter: 0",
		"BadYAML":         "max_retries: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}
