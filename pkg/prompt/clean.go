package prompt

import "strings"

// Clean normalizes a raw model response: trims surrounding whitespace,
// then removes the first occurrence of the artifact prefix anywhere in
// the string. The strip is deliberately not anchored to the start; a
// response that legitimately contains the prefix later in its text loses
// that occurrence too. Callers rely on this behavior, so it is kept as
// is rather than tightened.
func Clean(raw, artifactPrefix string) string {
	out := strings.TrimSpace(raw)
	if artifactPrefix == "" {
		return out
	}
	return strings.Replace(out, artifactPrefix, "", 1)
}
