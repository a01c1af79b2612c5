package pipeline

import "strings"

// wrapColumn is the line length past which a content space becomes a newline.
const wrapColumn = 80

// MarkdownConverter abstracts HTML to Markdown conversion.
type MarkdownConverter interface {
	ToMarkdown(content string) string
}

// ScanConverter converts HTML to Markdown in a single forward pass over the
// input. The handler table is built once and shared; every call runs with
// its own scanner state, so concurrent conversions are independent.
type ScanConverter struct {
	tags map[string]tagHandler
}

// NewScanConverter creates a ScanConverter with the full tag handler table.
func NewScanConverter() *ScanConverter {
	return &ScanConverter{tags: newTagRegistry()}
}

// ToMarkdown scans content left to right and returns the raw converted
// buffer. It never fails: malformed markup degrades to imperfect Markdown.
func (c *ScanConverter) ToMarkdown(content string) string {
	s := &scanner{tags: c.tags}
	return s.run(content)
}

// scanner holds all per-conversion state: the output buffer, the open-tag
// ancestry, and the transient descriptor of the tag being scanned. It is
// created at conversion start and discarded with the returned string.
type scanner struct {
	tags map[string]tagHandler

	buf   mdBuffer
	stack tagStack

	inTag   bool
	closing bool
	rawTag  []byte

	// lastTag is the name of the most recently scanned tag; content after a
	// link tag is discarded through it.
	lastTag string

	// contentIdx counts content characters emitted since the last tag
	// boundary; it gates leading-space collapsing and span separation.
	contentIdx int

	// href captured by the innermost open anchor.
	href string
}

func (s *scanner) run(html string) string {
	for i := 0; i < len(html); i++ {
		ch := html[i]
		switch {
		case !s.inTag && ch == '<':
			s.enterTag()
		case s.inTag:
			s.scanTagChar(ch)
		default:
			s.scanContentChar(ch)
		}
	}
	return s.buf.String()
}

// enterTag starts a fresh tag descriptor. A separating space keeps content
// tokens from merging across the tag boundary; inside suppressed regions the
// buffer stays untouched.
func (s *scanner) enterTag() {
	s.inTag = true
	s.closing = false
	s.rawTag = s.rawTag[:0]

	if s.stack.suppressed() {
		return
	}
	if last := s.buf.lastChar(); s.buf.len() > 0 && last != ' ' && last != '\n' {
		s.buf.appendByte(' ')
	}
}

// scanTagChar consumes one character inside <...>. Only a leading / is
// structural; everything else accumulates verbatim for post-hoc attribute
// extraction. A > always terminates the tag, quoted or not.
func (s *scanner) scanTagChar(ch byte) {
	if ch == '/' && len(s.rawTag) == 0 {
		s.closing = true
		return
	}
	if ch == '>' {
		s.leaveTag()
		return
	}
	s.rawTag = append(s.rawTag, ch)
}

// leaveTag dispatches the completed tag. Unknown tags are invisible: no
// push, no pop, no handler. Close handlers run before the pop so they still
// see their own tag on the stack; open handlers run after the push so a
// suppressing tag suppresses its own emission.
func (s *scanner) leaveTag() {
	s.inTag = false

	name := string(s.rawTag)
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	s.lastTag = name

	if handler, ok := s.tags[name]; ok {
		if s.closing {
			if !s.stack.suppressed() {
				handler.onClose(s)
			}
			s.stack.pop()
		} else {
			s.stack.push(name)
			if !s.stack.suppressed() {
				handler.onOpen(s)
			}
		}
	}

	s.contentIdx = 0
}

// scanContentChar consumes one character outside tag markup.
func (s *scanner) scanContentChar(ch byte) {
	if s.stack.suppressed() || s.lastTag == "link" {
		return
	}

	// Preformatted content is kept verbatim: newlines survive, spaces are
	// not collapsed, and no wrapping applies.
	if s.stack.contains("pre") {
		s.buf.appendByte(ch)
		s.contentIdx++
		return
	}

	if ch == '\n' {
		return
	}

	if ch == ' ' {
		last := s.buf.lastChar()
		if s.buf.len() == 0 || s.contentIdx == 0 || last == ' ' || last == '\n' {
			return
		}
	}

	// A dot closing a sentence should hug the preceding word.
	if ch == '.' && s.buf.lastChar() == ' ' {
		s.buf.truncate(1)
	}

	s.buf.appendByte(ch)
	s.contentIdx++

	// Soft wrap: the space that pushed the line past the limit becomes the
	// line break, so lines only break at word boundaries.
	if s.buf.lineLen > wrapColumn && ch == ' ' {
		s.buf.truncate(1)
		s.buf.appendByte('\n')
	}
}
