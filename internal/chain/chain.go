package chain

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/affine"
)

// Chain is an ordered list of transform steps.
type Chain struct {
	Steps []Step `toml:"step"`
}

// Append adds steps to the end of c. They run after the existing steps.
func (c *Chain) Append(steps ...Step) {
	c.Steps = append(c.Steps, steps...)
}

// Matrix composes the chain into a single transform. The first step is
// applied to a point first. An empty chain is the identity.
func (c Chain) Matrix() (affine.Matrix, error) {
	m := affine.Identity()
	for i, s := range c.Steps {
		sm, err := s.Matrix()
		if err != nil {
			return affine.Matrix{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		m = m.PostConcat(sm)
	}
	return m, nil
}

// Parse builds a chain from op strings, see ParseStep.
func Parse(ops []string) (Chain, error) {
	var c Chain
	for _, op := range ops {
		s, err := ParseStep(op)
		if err != nil {
			return Chain{}, err
		}
		c.Append(s)
	}
	return c, nil
}

// Decode reads a TOML chain description from r. Unknown keys are
// rejected and every step is validated.
func Decode(r io.Reader) (Chain, error) {
	var c Chain
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Chain{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Chain{}, fmt.Errorf("%w: unknown keys %s", ErrSyntax, strings.Join(keys, ", "))
	}
	if _, err := c.Matrix(); err != nil {
		return Chain{}, err
	}
	return c, nil
}

// Load reads a TOML chain description from the file at path.
func Load(path string) (Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return Chain{}, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Chain{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
