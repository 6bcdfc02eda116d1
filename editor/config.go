package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// Key bindings. The zero value falls back to DefaultKeyMap.
	KeyMap KeyMap

	// ReadOnly disables text mutations from key input.
	ReadOnly bool

	// OnChange, when set, observes text mutations after each Update.
	OnChange func(ChangeEvent)

	// Forwarded to buffer.Options.
	HistoryLimit int
}
