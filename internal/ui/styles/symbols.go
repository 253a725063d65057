package styles

// Symbols holds the card control glyphs
type Symbols struct {
	Expanded  string
	Collapsed string
	Copy      string
	Copied    string
	Cursor    string
	Search    string
}

var defaultSymbols = Symbols{
	Expanded:  "▾",
	Collapsed: "▸",
	Copy:      "⧉",
	Copied:    "✓",
	Cursor:    "›",
	Search:    "/",
}

var nerdfontSymbols = Symbols{
	Expanded:  "\uf078", // nf-fa-chevron_down
	Collapsed: "\uf054", // nf-fa-chevron_right
	Copy:      "\uf0c5", // nf-fa-copy
	Copied:    "\uf00c", // nf-fa-check
	Cursor:    "\uf105", // nf-fa-angle_right
	Search:    "\uf002", // nf-fa-search
}

var useNerdfont bool

var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// ExpansionSymbol returns the disclosure glyph for a card.
func ExpansionSymbol(expanded bool) string {
	if expanded {
		return currentSymbols.Expanded
	}
	return currentSymbols.Collapsed
}

// CopyControl returns the copy control text: the locale's copy label, or a
// checkmark while the card is in its copied state.
func CopyControl(label string, copied bool) string {
	if copied {
		return SuccessStyle.Render(currentSymbols.Copied)
	}
	return MutedStyle.Render(currentSymbols.Copy + " " + label)
}
