package domain

// Console describes the output terminal.
type Console interface {
	IsInteractive() bool
}
