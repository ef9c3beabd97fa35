// Package validate applies declarative per-flow field contracts to raw
// string input. It performs no I/O and reports every violation in one pass,
// keyed by field name, so callers can render errors inline next to each
// field. Unknown extra fields are ignored.
package validate

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Kind selects the shape check applied to a non-empty value.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindJSON
)

// Rule is the contract for one field.
type Rule struct {
	Field     string
	Label     string
	Required  bool
	MinLength int
	Kind      Kind
}

// Schema is an ordered set of field rules for one flow.
type Schema []Rule

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Apply checks fields against the schema and returns a map of field name to
// human-readable messages. An empty map means the input is valid. Optional
// fields are only shape-checked when present.
func (s Schema) Apply(fields map[string]string) map[string][]string {
	errs := make(map[string][]string)

	for _, r := range s {
		value := fields[r.Field]

		if value == "" {
			if r.Required {
				errs[r.Field] = append(errs[r.Field], fmt.Sprintf("%s is required", r.Label))
			}
			continue
		}

		if r.MinLength > 0 && len([]rune(value)) < r.MinLength {
			errs[r.Field] = append(errs[r.Field],
				fmt.Sprintf("%s must be at least %d characters", r.Label, r.MinLength))
		}

		switch r.Kind {
		case KindEmail:
			if !emailShape.MatchString(value) {
				errs[r.Field] = append(errs[r.Field],
					fmt.Sprintf("%s must be a valid email address", r.Label))
			}
		case KindJSON:
			if !json.Valid([]byte(value)) {
				errs[r.Field] = append(errs[r.Field],
					fmt.Sprintf("%s must be valid JSON", r.Label))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
