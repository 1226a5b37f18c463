package fare

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidPolicy = errors.New("invalid fare policy")

type policyFile struct {
	Kind     string          `yaml:"kind"`
	Flat     *Flat           `yaml:"flat"`
	Distance *DistanceTiered `yaml:"distance"`
}

func (f *Flat) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&f.Amount)
	}
	var raw struct {
		Amount int `yaml:"amount"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	f.Amount = raw.Amount
	return nil
}

// LoadPolicy reads a YAML policy file. An empty path selects Default.
func LoadPolicy(path string) (Policy, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fare policy %s: %w", path, err)
	}
	return ParsePolicy(data)
}

func ParsePolicy(data []byte) (Policy, error) {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	switch file.Kind {
	case "flat":
		if file.Flat == nil {
			return nil, fmt.Errorf("%w: kind flat needs a flat amount", ErrInvalidPolicy)
		}
		if file.Flat.Amount < 0 {
			return nil, fmt.Errorf("%w: negative flat amount", ErrInvalidPolicy)
		}
		return *file.Flat, nil
	case "", "distance":
		if file.Distance == nil {
			return Default(), nil
		}
		if err := file.Distance.Validate(); err != nil {
			return nil, err
		}
		return *file.Distance, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidPolicy, file.Kind)
	}
}

func (d DistanceTiered) Validate() error {
	if d.Base < 0 || d.BaseDistance < 0 {
		return fmt.Errorf("%w: base and baseDistance must not be negative", ErrInvalidPolicy)
	}

	lower := d.BaseDistance
	for i, tier := range d.Tiers {
		if tier.Every <= 0 {
			return fmt.Errorf("%w: tier %d needs a positive every", ErrInvalidPolicy, i)
		}
		if tier.Amount < 0 {
			return fmt.Errorf("%w: tier %d has a negative amount", ErrInvalidPolicy, i)
		}
		if tier.UpTo == 0 {
			if i != len(d.Tiers)-1 {
				return fmt.Errorf("%w: only the last tier may be unbounded", ErrInvalidPolicy)
			}
			continue
		}
		if tier.UpTo <= lower {
			return fmt.Errorf("%w: tier %d bound %d is not above %d", ErrInvalidPolicy, i, tier.UpTo, lower)
		}
		lower = tier.UpTo
	}
	return nil
}
