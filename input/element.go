package input

import "strings"

// Element describes the surface that holds keyboard focus.
type Element struct {
	Tag             string // "input", "textarea", ...
	Type            string // input type attribute
	ContentEditable bool
}

var textInputTypes = map[string]bool{
	"text":           true,
	"password":       true,
	"email":          true,
	"search":         true,
	"tel":            true,
	"url":            true,
	"number":         true,
	"date":           true,
	"datetime-local": true,
	"month":          true,
	"time":           true,
	"week":           true,
}

// TextField is the focus descriptor for a plain single-line text input.
func TextField() *Element {
	return &Element{Tag: "input", Type: "text"}
}

// IsTextEditing reports whether keystrokes on el are meant for text entry.
func IsTextEditing(el *Element) bool {
	if el == nil {
		return false
	}
	if el.ContentEditable {
		return true
	}
	switch strings.ToLower(el.Tag) {
	case "textarea":
		return true
	case "input":
		return textInputTypes[strings.ToLower(el.Type)]
	}
	return false
}
