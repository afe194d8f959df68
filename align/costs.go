package align

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dirhq88/hangul-dtw/jamo"
)

// Costs is the explicit penalty scheme of the unit cost model. It is
// passed by value into Align; there is no hidden module state, so two
// calls with different schemes never interfere.
//
// The scheme must satisfy CrossKind ≥ SameKind ≥ 0: aligning a vowel
// against a consonant is never phonologically meaningful and must not be
// cheaper than a same-kind substitution.
type Costs struct {
	// Gap is the constant insertion/deletion penalty.
	Gap float64 `yaml:"gap"`
	// SameKind is the substitution penalty for two distinct units of the
	// same kind (e.g. vowel vs vowel).
	SameKind float64 `yaml:"same_kind"`
	// CrossKind is the substitution penalty across kinds.
	CrossKind float64 `yaml:"cross_kind"`
	// Pairs overrides the substitution penalty for specific jamo pairs.
	// A key is the two runes concatenated (e.g. "ᅩᅥ"); lookup is
	// symmetric. Overrides also apply across kinds, so a scheme can make
	// e.g. a final consonant cheap against its initial counterpart.
	Pairs map[string]float64 `yaml:"pairs,omitempty"`
}

// DefaultCosts returns the stock scheme: gap 1, same-kind substitution 1,
// cross-kind substitution 2, no pair overrides.
func DefaultCosts() Costs {
	return Costs{Gap: 1, SameKind: 1, CrossKind: 2}
}

// LoadCosts reads a YAML cost scheme from path. Missing fields keep their
// DefaultCosts values, so a scheme file may list only overrides:
//
//	cross_kind: 3
//	pairs:
//	  "ᅩᅥ": 0.3
//
// The loaded scheme is validated before being returned.
func LoadCosts(path string) (Costs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Costs{}, fmt.Errorf("align: read cost scheme: %w", err)
	}
	c := DefaultCosts()
	if err = yaml.Unmarshal(raw, &c); err != nil {
		return Costs{}, fmt.Errorf("align: parse cost scheme: %w", err)
	}
	if err = c.validate(); err != nil {
		return Costs{}, err
	}
	return c, nil
}

// validate checks the scheme invariants. Every violation wraps ErrBadCosts.
func (c Costs) validate() error {
	if c.Gap < 0 {
		return fmt.Errorf("%w: gap penalty %v is negative", ErrBadCosts, c.Gap)
	}
	if c.SameKind < 0 {
		return fmt.Errorf("%w: same-kind penalty %v is negative", ErrBadCosts, c.SameKind)
	}
	if c.CrossKind < c.SameKind {
		return fmt.Errorf("%w: cross-kind penalty %v below same-kind %v", ErrBadCosts, c.CrossKind, c.SameKind)
	}
	for pair, v := range c.Pairs {
		if v < 0 {
			return fmt.Errorf("%w: pair %q penalty %v is negative", ErrBadCosts, pair, v)
		}
	}
	return nil
}

// unit returns the substitution cost between two real units: 0 for an
// identical kind and rune, otherwise a pair override when present,
// otherwise the kind-dependent penalty.
func (c Costs) unit(a, b jamo.Unit) float64 {
	if a.Kind == b.Kind && a.Rune == b.Rune {
		return 0
	}
	if len(c.Pairs) > 0 {
		if v, ok := c.Pairs[string([]rune{a.Rune, b.Rune})]; ok {
			return v
		}
		if v, ok := c.Pairs[string([]rune{b.Rune, a.Rune})]; ok {
			return v
		}
	}
	if a.Kind == b.Kind {
		return c.SameKind
	}
	return c.CrossKind
}
