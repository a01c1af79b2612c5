package pipeline

import "strings"

// extractAttribute pulls an attribute value out of raw tag text, e.g. href
// from `a href="https://x" class="y"`. It locates the attribute name, the
// next '=', then whichever quote character follows first; that quote wraps
// the value. Any missing step yields "" rather than an error: an anchor with
// an unextractable href simply links to an empty target.
func extractAttribute(rawTag, name string) string {
	i := strings.Index(rawTag, name)
	if i < 0 {
		return ""
	}

	eq := strings.IndexByte(rawTag[i:], '=')
	if eq < 0 {
		return ""
	}
	rest := rawTag[i+eq:]

	double := strings.IndexByte(rest, '"')
	single := strings.IndexByte(rest, '\'')

	var quote byte
	var open int
	switch {
	case double < 0 && single < 0:
		return ""
	case single < 0 || (double >= 0 && double < single):
		quote, open = '"', double
	default:
		quote, open = '\'', single
	}

	value := rest[open+1:]
	end := strings.IndexByte(value, quote)
	if end < 0 {
		return ""
	}
	return value[:end]
}
