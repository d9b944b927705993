package input

import "unicode"

// MaxNameLength caps the player name field, in runes.
const MaxNameLength = 20

// NameField is a single-line text input. While focused it owns the keyboard
// and the dispatcher passes every key through to it.
type NameField struct {
	text    []rune
	focused bool
}

func (f *NameField) Focus() { f.focused = true }

func (f *NameField) Blur() { f.focused = false }

func (f *NameField) Focused() bool { return f.focused }

// Element is the focus descriptor for dispatch: a text input while focused,
// nil otherwise.
func (f *NameField) Element() *Element {
	if !f.focused {
		return nil
	}
	return TextField()
}

// Insert appends r if focused, printable and under the length cap.
func (f *NameField) Insert(r rune) {
	if !f.focused || !unicode.IsPrint(r) || len(f.text) >= MaxNameLength {
		return
	}
	f.text = append(f.text, r)
}

func (f *NameField) Backspace() {
	if !f.focused || len(f.text) == 0 {
		return
	}
	f.text = f.text[:len(f.text)-1]
}

func (f *NameField) Text() string {
	return string(f.text)
}
