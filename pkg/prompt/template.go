package prompt

import "strings"

func applyTemplate(template string, values map[string]string) string {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, placeholder(key), value)
	}
	return out
}
