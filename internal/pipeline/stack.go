package pipeline

// ignoredTags are the ancestors whose subtree content is suppressed. head and
// meta are recognized tags but deliberately absent: they are routinely left
// unclosed, and suppressing on them would swallow the rest of the document.
var ignoredTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"template": {},
	"noscript": {},
	"nav":      {},
}

// tagStack records the open-tag ancestry at the current scan position.
// Unbalanced markup is tolerated: pop on an empty stack is a no-op, and
// entries left open at end of input are simply abandoned.
type tagStack struct {
	names []string
}

func (s *tagStack) push(name string) {
	s.names = append(s.names, name)
}

func (s *tagStack) pop() {
	if len(s.names) > 0 {
		s.names = s.names[:len(s.names)-1]
	}
}

func (s *tagStack) contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// suppressed reports whether the current position is inside an ignored
// subtree. The walk runs from the outermost entry inward; pre and title
// exempt everything beneath them when encountered first.
func (s *tagStack) suppressed() bool {
	for _, name := range s.names {
		if name == "pre" || name == "title" {
			return false
		}
		if _, ok := ignoredTags[name]; ok {
			return true
		}
	}
	return false
}
