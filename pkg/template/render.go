package template

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExtractPlaceholders lists the `{name}` placeholders in body in first
// appearance order, without duplicates.
func ExtractPlaceholders(body string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

// Render substitutes `{name}` placeholders with values. Placeholders
// without a value are left intact and reported in missing so interactive
// callers can prompt for them; rendering never fails.
func Render(t *Template, values map[string]string) (text string, missing []string) {
	text = placeholderPattern.ReplaceAllStringFunc(t.Body, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := values[name]; ok {
			return v
		}
		return m
	})
	for _, name := range ExtractPlaceholders(t.Body) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	return text, missing
}

// argumentDescriptions names the sequence-script argument tokens that
// Parameterize lifts into placeholders.
var argumentDescriptions = map[string]string{
	"SFX":  "SFX identifier",
	"Anim": "Animation identifier",
	"Text": "Message text",
}

var parameterizeTokens = []string{"SFX", "Anim", "Text"}

// Parameterize turns the literal SFX=, Anim= and Text= argument values
// of a sequence script into numbered placeholders, returning the
// templated body and a placeholder->description map recording the
// original values. This is how "save selection as template" builds a
// reusable snippet out of a concrete script.
func Parameterize(text string) (string, map[string]string) {
	placeholders := make(map[string]string)
	counters := make(map[string]int)
	for _, token := range parameterizeTokens {
		pattern := regexp.MustCompile(`(` + token + `\s*=\s*)([^;\n]+)`)
		text = pattern.ReplaceAllStringFunc(text, func(m string) string {
			sub := pattern.FindStringSubmatch(m)
			value := strings.TrimSpace(sub[2])
			counters[token]++
			name := fmt.Sprintf("%s_%d", strings.ToLower(token), counters[token])
			if _, ok := placeholders[name]; !ok {
				placeholders[name] = fmt.Sprintf("%s (was %s)", argumentDescriptions[token], value)
			}
			return sub[1] + "{" + name + "}"
		})
	}
	return text, placeholders
}
