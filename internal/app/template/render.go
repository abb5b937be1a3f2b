package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/mathsheets/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid("unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalid("empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", invalid(fmt.Sprintf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// Placeholders lists the distinct placeholder names in input, in order of first use.
func Placeholders(input string) []string {
	var out []string
	seen := map[string]bool{}
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			return out
		}
		rest = rest[start+2:]
		end := strings.Index(rest, "}}")
		if end == -1 {
			return out
		}
		key := strings.TrimSpace(rest[:end])
		if key != "" && !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
		rest = rest[end+2:]
	}
}

func invalid(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
