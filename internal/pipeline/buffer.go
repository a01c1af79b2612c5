package pipeline

import "bytes"

// mdBuffer accumulates converted Markdown. It tracks the length of the line
// currently being written (for soft wrapping) and supports retracting the
// last one or two bytes to undo a tentatively emitted separator. No call
// site retracts more than two bytes.
type mdBuffer struct {
	data    []byte
	lineLen int
}

func (b *mdBuffer) len() int { return len(b.data) }

func (b *mdBuffer) String() string { return string(b.data) }

// lastChar returns the last byte, or 0 when the buffer is empty.
func (b *mdBuffer) lastChar() byte {
	if len(b.data) == 0 {
		return 0
	}
	return b.data[len(b.data)-1]
}

// secondLastChar returns the second to last byte, or 0 when fewer than two
// bytes have been written.
func (b *mdBuffer) secondLastChar() byte {
	if len(b.data) < 2 {
		return 0
	}
	return b.data[len(b.data)-2]
}

// appendByte writes ch and keeps the line counter in sync: a newline resets
// it, anything else increments it by one.
func (b *mdBuffer) appendByte(ch byte) {
	b.data = append(b.data, ch)
	if ch == '\n' {
		b.lineLen = 0
	} else {
		b.lineLen++
	}
}

func (b *mdBuffer) appendString(s string) {
	for i := 0; i < len(s); i++ {
		b.appendByte(s[i])
	}
}

// truncate removes the last n bytes and recounts the current line.
func (b *mdBuffer) truncate(n int) {
	if n > len(b.data) {
		n = len(b.data)
	}
	b.data = b.data[:len(b.data)-n]
	b.recountLine()
}

func (b *mdBuffer) recountLine() {
	i := bytes.LastIndexByte(b.data, '\n')
	b.lineLen = len(b.data) - i - 1
}

// trimTrailingBlanks removes trailing spaces and tabs, leaving newlines in
// place.
func (b *mdBuffer) trimTrailingBlanks() {
	n := len(b.data)
	for n > 0 && (b.data[n-1] == ' ' || b.data[n-1] == '\t') {
		n--
	}
	b.data = b.data[:n]
	b.recountLine()
}

// ensureBlank appends a single separating space unless the buffer is empty,
// ends with a newline, or ends with the ** of an emphasis marker.
func (b *mdBuffer) ensureBlank() {
	if b.len() == 0 || b.lastChar() == '\n' {
		return
	}
	if b.lastChar() == '*' && b.secondLastChar() == '*' {
		return
	}
	b.appendByte(' ')
}

// ensureNewline makes the buffer end with a newline. No-op when empty.
func (b *mdBuffer) ensureNewline() {
	if b.len() == 0 || b.lastChar() == '\n' {
		return
	}
	b.appendByte('\n')
}

// ensureBlankLine makes the buffer end with a blank line, appending at most
// two newlines. The tail is re-read after the first append. No-op when empty.
func (b *mdBuffer) ensureBlankLine() {
	if b.len() == 0 {
		return
	}
	if b.lastChar() != '\n' {
		b.appendByte('\n')
	}
	if b.secondLastChar() != '\n' {
		b.appendByte('\n')
	}
}

// underline turns the current line into a setext heading by appending a rule
// of ch matching the line's length, followed by a blank line.
func (b *mdBuffer) underline(ch byte) {
	n := b.lineLen
	b.appendByte('\n')
	for i := 0; i < n; i++ {
		b.appendByte(ch)
	}
	b.appendString("\n\n")
}
