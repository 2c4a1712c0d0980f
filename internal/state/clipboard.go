package state

// ClipboardMode is the kind of transfer a paste performs.
type ClipboardMode int

const (
	ClipboardCopy ClipboardMode = iota
	ClipboardCut
)

func (m ClipboardMode) String() string {
	if m == ClipboardCut {
		return "cut"
	}
	return "copy"
}

// ClipboardIntent is a pending copy or cut.
type ClipboardIntent struct {
	Mode  ClipboardMode
	Paths []string
	// Generation identifies this intent; a later copy or cut gets a new one.
	Generation uint64
}

// Clipboard holds at most one intent. It is owned by a single AppState and
// is not safe for concurrent use.
type Clipboard struct {
	intent     *ClipboardIntent
	generation uint64
}

// Copy replaces the current intent with a copy of paths.
func (c *Clipboard) Copy(paths []string) {
	c.set(ClipboardCopy, paths)
}

// Cut replaces the current intent with a move of paths.
func (c *Clipboard) Cut(paths []string) {
	c.set(ClipboardCut, paths)
}

func (c *Clipboard) set(mode ClipboardMode, paths []string) {
	if len(paths) == 0 {
		return
	}
	c.generation++
	c.intent = &ClipboardIntent{
		Mode:       mode,
		Paths:      append([]string(nil), paths...),
		Generation: c.generation,
	}
}

// Peek reports the pending mode, if any.
func (c *Clipboard) Peek() (ClipboardMode, bool) {
	if c.intent == nil {
		return 0, false
	}
	return c.intent.Mode, true
}

// Current returns a copy of the pending intent without clearing it.
func (c *Clipboard) Current() (ClipboardIntent, bool) {
	if c.intent == nil {
		return ClipboardIntent{}, false
	}
	out := *c.intent
	out.Paths = append([]string(nil), c.intent.Paths...)
	return out, true
}

// Consume returns and clears the pending intent.
func (c *Clipboard) Consume() (ClipboardIntent, bool) {
	intent, ok := c.Current()
	c.intent = nil
	return intent, ok
}

// ConsumeIf clears the intent only when it is still the given generation,
// so a paste never discards a newer copy or cut.
func (c *Clipboard) ConsumeIf(generation uint64) bool {
	if c.intent == nil || c.intent.Generation != generation {
		return false
	}
	c.intent = nil
	return true
}
