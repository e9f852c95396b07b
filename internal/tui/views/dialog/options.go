package dialog

// Option is one button of the picker dialog.
type Option int

const (
	Choose Option = iota
	Copy
	Done
	Cancel
)

// RenderOptions returns the dialog button labels in display order.
func RenderOptions() []string {
	return []string{
		"Choose date",
		"Copy",
		"Done",
		"Cancel",
	}
}

// Next moves the button cursor, wrapping at both ends.
func Next(o Option, delta int) Option {
	n := len(RenderOptions())
	return Option(((int(o)+delta)%n + n) % n)
}
