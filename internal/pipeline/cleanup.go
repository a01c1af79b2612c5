package pipeline

import "strings"

// artifactSubs are applied in this exact order after line tidying. They
// correct constructs the single-pass scanner cannot detect without
// lookahead, such as a sentence dot wrapped onto its own line.
var artifactSubs = [...]struct{ old, new string }{
	{" , ", ", "},
	{"\n.\n", ".\n"},
	{"\n↵\n", " ↵\n"},
	{"\n*\n", "\n"},
	{"\n. ", ".\n"},
	{" [ ", " ["},
	{"\n[ ", "\n["},
}

// MarkdownCleaner defines the contract for the post-scan cleanup pass.
type MarkdownCleaner interface {
	CleanMarkdown(content string) string
}

// TidyCleaner tidies lines and removes scanner artifacts.
type TidyCleaner struct{}

// CleanMarkdown runs once over the finished buffer: per-line tidying, then
// the fixed artifact substitutions.
func (c *TidyCleaner) CleanMarkdown(content string) string {
	content = tidyLines(content)
	for _, sub := range artifactSubs {
		content = strings.ReplaceAll(content, sub.old, sub.new)
	}
	return content
}

// tidyLines trims every line and caps runs of blank lines at two. Lines that
// ended with a Markdown hard break keep exactly two trailing spaces; bare
// "." and "*" lines do not, so the artifact substitutions can remove them.
// Trailing newlines are stripped entirely, which makes tidied output a
// fixpoint: tidying it again changes nothing.
func tidyLines(content string) string {
	var b strings.Builder
	blanks := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if blanks < 2 {
				b.WriteByte('\n')
				blanks++
			}
			continue
		}
		blanks = 0
		if strings.HasSuffix(line, "  ") && trimmed != "." && trimmed != "*" {
			trimmed += "  "
		}
		b.WriteString(trimmed)
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}
