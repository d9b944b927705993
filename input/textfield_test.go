package input

import (
	"strings"
	"testing"

	"impulse-snake/game/types"

	"github.com/stretchr/testify/assert"
)

func TestNameFieldEditing(t *testing.T) {
	var f NameField
	f.Insert('x')
	assert.Empty(t, f.Text(), "unfocused field ignores input")
	assert.Nil(t, f.Element())

	f.Focus()
	for _, r := range "wasd é" {
		f.Insert(r)
	}
	f.Insert('\n')
	assert.Equal(t, "wasd é", f.Text())

	f.Backspace()
	assert.Equal(t, "wasd ", f.Text())
	assert.True(t, IsTextEditing(f.Element()))

	f.Blur()
	f.Backspace()
	assert.Equal(t, "wasd ", f.Text())
}

func TestNameFieldLengthCap(t *testing.T) {
	var f NameField
	f.Focus()
	for i := 0; i < MaxNameLength+5; i++ {
		f.Insert('a')
	}
	assert.Equal(t, strings.Repeat("a", MaxNameLength), f.Text())
}

func TestFocusedNameFieldKeepsKeysFromEngine(t *testing.T) {
	ctrl := &fakeController{status: types.Idle}
	d := NewDispatcher(ctrl)
	var f NameField
	f.Focus()

	for _, key := range []string{"w", "a", "s", "d", KeySpace} {
		assert.Equal(t, Passthrough, d.Dispatch(Event{Key: key, Active: f.Element()}))
	}
	assert.Zero(t, ctrl.starts)

	f.Blur()
	assert.Equal(t, Handled, d.Dispatch(Event{Key: KeySpace, Active: f.Element()}))
	assert.Equal(t, 1, ctrl.starts)
}
