package pipeline

// tagHandler is the per-tag emission strategy. Handlers are stateless and
// shared across every open/close event of their tag; all mutable state lives
// on the scanner passed in.
type tagHandler interface {
	onOpen(s *scanner)
	onClose(s *scanner)
}

// newTagRegistry builds the tag name to handler table. Synonyms share one
// instance: b/strong, br/option (identical hard-break close), and the
// blank-line block tags div/ol/ul.
func newTagRegistry() map[string]tagHandler {
	noop := &noopTag{}
	emphasis := &emphasisTag{}
	hardBreak := &hardBreakTag{}
	blankLine := &blankLineTag{}

	return map[string]tagHandler{
		// Non-printing tags. Recognized so they are pushed and popped;
		// suppression itself comes from the stack predicate.
		"head":     noop,
		"meta":     noop,
		"nav":      noop,
		"noscript": noop,
		"script":   noop,
		"style":    noop,
		"template": noop,

		"a":      &anchorTag{},
		"b":      emphasis,
		"strong": emphasis,
		"br":     hardBreak,
		"option": hardBreak,
		"div":    blankLine,
		"ol":     blankLine,
		"ul":     blankLine,
		"h1":     &setextTag{requireContent: true},
		"title":  &setextTag{},
		"h2":     &atxTag{prefix: "### "},
		"h3":     &atxTag{prefix: "#### "},
		"h4":     &atxTag{prefix: "##### "},
		"li":     &listItemTag{},
		"p":      &paragraphTag{},
		"pre":    &preTag{},
		"span":   &spanTag{},
	}
}

type noopTag struct{}

func (*noopTag) onOpen(*scanner)  {}
func (*noopTag) onClose(*scanner) {}

// anchorTag emits [text](href). The href is captured at open time from the
// raw tag text; nested anchors overwrite it, keeping the innermost target.
type anchorTag struct{}

func (*anchorTag) onOpen(s *scanner) {
	s.buf.trimTrailingBlanks()
	s.buf.ensureBlank()
	s.buf.appendByte('[')
	s.href = extractAttribute(string(s.rawTag), "href")
}

func (*anchorTag) onClose(s *scanner) {
	if s.buf.lastChar() == ' ' {
		s.buf.truncate(1)
	}
	// Nothing between [ and here: elide the link entirely.
	if s.buf.lastChar() == '[' {
		s.buf.truncate(1)
		return
	}
	s.buf.appendString("](" + s.href + ") ")
}

type emphasisTag struct{}

func (*emphasisTag) onOpen(s *scanner) {
	if s.buf.len() > 0 && s.buf.lastChar() != ' ' {
		s.buf.appendByte(' ')
	}
	s.buf.appendString("**")
}

func (*emphasisTag) onClose(s *scanner) {
	if s.buf.lastChar() == ' ' {
		s.buf.truncate(1)
	}
	s.buf.appendString("**")
}

// hardBreakTag serves br and option: the close emits a Markdown hard break.
type hardBreakTag struct{}

func (*hardBreakTag) onOpen(*scanner) {}

func (*hardBreakTag) onClose(s *scanner) {
	if s.buf.len() > 0 {
		s.buf.appendString("  \n")
	}
}

// blankLineTag serves div, ol and ul: opening guarantees a blank line before
// the block.
type blankLineTag struct{}

func (*blankLineTag) onOpen(s *scanner) {
	s.buf.ensureBlankLine()
}

func (*blankLineTag) onClose(*scanner) {}

// setextTag underlines the current line with = on close. h1 requires emitted
// content; title underlines unconditionally. The tag-boundary separator
// space is retracted first so the rule length matches the visible text.
type setextTag struct {
	requireContent bool
}

func (*setextTag) onOpen(*scanner) {}

func (t *setextTag) onClose(s *scanner) {
	if t.requireContent && s.buf.len() == 0 {
		return
	}
	if s.buf.lastChar() == ' ' {
		s.buf.truncate(1)
	}
	s.buf.underline('=')
}

// atxTag serves h2/h3/h4 with their heading marker.
type atxTag struct {
	prefix string
}

func (t *atxTag) onOpen(s *scanner) {
	s.buf.appendString("\n\n\n" + t.prefix)
}

func (*atxTag) onClose(s *scanner) {
	s.buf.appendString("\n\n")
}

type listItemTag struct{}

func (*listItemTag) onOpen(s *scanner) {
	s.buf.ensureNewline()
	s.buf.appendString("* ")
}

func (*listItemTag) onClose(s *scanner) {
	if s.buf.len() > 0 {
		s.buf.appendString("  \n")
	}
}

type paragraphTag struct{}

func (*paragraphTag) onOpen(*scanner) {}

func (*paragraphTag) onClose(s *scanner) {
	if s.buf.len() > 0 {
		s.buf.appendString("  \n\n")
	}
}

type preTag struct{}

func (*preTag) onOpen(s *scanner) {
	s.buf.ensureBlankLine()
	s.buf.appendString("````\n")
}

func (*preTag) onClose(s *scanner) {
	s.buf.appendString("\n````\n\n")
}

// spanTag separates adjacent inline runs: if the span emitted content and the
// buffer doesn't already end with a space, append one.
type spanTag struct{}

func (*spanTag) onOpen(*scanner) {}

func (*spanTag) onClose(s *scanner) {
	if s.contentIdx > 0 && s.buf.lastChar() != ' ' {
		s.buf.appendByte(' ')
	}
}
