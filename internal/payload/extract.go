// Package payload isolates the JSON payload a generative model was asked to
// emit from its unconstrained text output, and parses it tolerantly.
package payload

import (
	"regexp"
	"strings"
)

// Extracted is the best-effort candidate substring believed to contain JSON.
type Extracted struct {
	Candidate string
	Fenced    bool
}

var fencedJSONRe = regexp.MustCompile("(?is)```json\\s*(.*?)```")

// Extract locates the most likely JSON payload inside raw text. Preference
// order: interior of the first ```json fenced block, then the first balanced
// top-level {...} or [...] span, then the whole trimmed text. It always
// yields a candidate; it never validates JSON-ness itself.
func Extract(raw string) Extracted {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		return Extracted{Candidate: strings.TrimSpace(m[1]), Fenced: true}
	}

	if start := strings.IndexAny(raw, "{["); start >= 0 {
		return Extracted{Candidate: balancedSpan(raw, start)}
	}

	return Extracted{Candidate: strings.TrimSpace(raw)}
}

// balancedSpan returns the substring from the opener at start to its matching
// closer, skipping brackets inside string literals. When the text ends before
// the bracket closes, the unterminated suffix is returned as-is and left for
// the repair pass to complete.
func balancedSpan(raw string, start int) string {
	depth := 0
	inStr := false
	escaped := false

	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inStr {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inStr = false
			}
			continue
		}
		switch ch {
		case '"':
			inStr = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return raw[start:]
}
