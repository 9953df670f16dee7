package model

// CommandLine is the ":" line editor. While it holds text the first rune
// is always ':'; empty means no command is being composed. col is the
// cursor column, which is also the buffer index new runes go in at, and
// stays within [1, len] while non-empty.
type CommandLine struct {
	buf []rune
	col int
}

// Start seeds the line with the ':' prompt.
func (c *CommandLine) Start() {
	c.buf = append(c.buf[:0], ':')
	c.col = 1
}

func (c *CommandLine) Empty() bool { return len(c.buf) == 0 }

func (c *CommandLine) Col() int { return c.col }

func (c *CommandLine) Len() int { return len(c.buf) }

// String returns the whole line including the ':'.
func (c *CommandLine) String() string { return string(c.buf) }

// Text returns what was typed after the ':'.
func (c *CommandLine) Text() string {
	if c.Empty() {
		return ""
	}
	return string(c.buf[1:])
}

// Insert puts r under the cursor and advances.
func (c *CommandLine) Insert(r rune) {
	if c.Empty() {
		return
	}
	c.buf = append(c.buf, 0)
	copy(c.buf[c.col+1:], c.buf[c.col:])
	c.buf[c.col] = r
	c.col++
}

// Backspace deletes the rune left of the cursor. Backspacing over a lone
// ':' clears the line; the ':' is otherwise never removed.
func (c *CommandLine) Backspace() {
	switch {
	case c.Empty():
		return
	case len(c.buf) == 1:
		c.Clear()
		return
	case c.col <= 1:
		return
	}
	c.col--
	c.buf = append(c.buf[:c.col], c.buf[c.col+1:]...)
}

func (c *CommandLine) MoveLeft() {
	if c.col > 1 {
		c.col--
	}
}

func (c *CommandLine) MoveRight() {
	if c.col < len(c.buf) {
		c.col++
	}
}

func (c *CommandLine) Clear() {
	c.buf = c.buf[:0]
	c.col = 0
}
