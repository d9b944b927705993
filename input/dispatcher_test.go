package input

import (
	"testing"
	"time"

	"impulse-snake/game/types"

	"github.com/stretchr/testify/assert"
)

// fakeController records the commands it receives.
type fakeController struct {
	status     types.Status
	starts     int
	resets     int
	directions []types.Direction
}

func (f *fakeController) Start() {
	f.starts++
	f.status = types.Playing
}

func (f *fakeController) Reset() {
	f.resets++
	f.status = types.Idle
}

func (f *fakeController) SetDirection(d types.Direction) {
	f.directions = append(f.directions, d)
}

func (f *fakeController) Status() types.Status {
	return f.status
}

func TestDirectionKeys(t *testing.T) {
	cases := map[string]types.Direction{
		"w": types.Up, "W": types.Up, KeyArrowUp: types.Up,
		"s": types.Down, KeyArrowDown: types.Down,
		"a": types.Left, KeyArrowLeft: types.Left,
		"d": types.Right, "D": types.Right, KeyArrowRight: types.Right,
	}
	for key, want := range cases {
		ctrl := &fakeController{status: types.Playing}
		d := NewDispatcher(ctrl)
		assert.Equal(t, Handled, d.Dispatch(Event{Key: key}), key)
		assert.Equal(t, []types.Direction{want}, ctrl.directions, key)
	}
}

func TestDirectionKeysIgnoredUnlessPlaying(t *testing.T) {
	for _, status := range []types.Status{types.Idle, types.GameOver} {
		ctrl := &fakeController{status: status}
		d := NewDispatcher(ctrl)
		assert.Equal(t, Handled, d.Dispatch(Event{Key: "w"}))
		assert.Empty(t, ctrl.directions)
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	ctrl := &fakeController{status: types.Playing}
	d := NewDispatcher(ctrl)
	assert.Equal(t, Ignored, d.Dispatch(Event{Key: "q"}))
	assert.Empty(t, ctrl.directions)
	assert.Zero(t, ctrl.starts)
}

func TestSpaceStartsFromIdleAndGameOver(t *testing.T) {
	ctrl := &fakeController{status: types.Idle}
	d := NewDispatcher(ctrl)

	assert.Equal(t, Handled, d.Dispatch(Event{Key: KeySpace, At: time.Second}))
	assert.Equal(t, 1, ctrl.starts)

	// Playing: space does nothing.
	d.Dispatch(Event{Key: KeySpace, At: 2 * time.Second})
	assert.Equal(t, 1, ctrl.starts)

	ctrl.status = types.GameOver
	d.Dispatch(Event{Key: KeySpace, At: 3 * time.Second})
	assert.Equal(t, 2, ctrl.starts)
}

func TestStartDebounce(t *testing.T) {
	ctrl := &fakeController{status: types.Idle}
	d := NewDispatcher(ctrl)

	d.Dispatch(Event{Key: KeySpace, At: time.Second})
	ctrl.status = types.GameOver // e.g. an instant crash
	d.Dispatch(Event{Key: KeySpace, At: time.Second + 50*time.Millisecond})
	d.Dispatch(Event{Key: KeySpace, At: time.Second + 199*time.Millisecond})
	assert.Equal(t, 1, ctrl.starts)

	d.Dispatch(Event{Key: KeySpace, At: time.Second + 200*time.Millisecond})
	assert.Equal(t, 2, ctrl.starts)
}

func TestCustomDebounce(t *testing.T) {
	ctrl := &fakeController{status: types.Idle}
	d := NewDispatcher(ctrl, WithStartDebounce(time.Second))

	d.Dispatch(Event{Key: KeySpace, At: 0})
	ctrl.status = types.Idle
	d.Dispatch(Event{Key: KeySpace, At: 500 * time.Millisecond})
	assert.Equal(t, 1, ctrl.starts)
}

func TestEscapeResets(t *testing.T) {
	ctrl := &fakeController{status: types.Playing}
	d := NewDispatcher(ctrl)
	assert.Equal(t, Handled, d.Dispatch(Event{Key: KeyEscape}))
	assert.Equal(t, 1, ctrl.resets)
	assert.Equal(t, types.Idle, ctrl.status)
}

func TestTextEditingPassthrough(t *testing.T) {
	surfaces := []*Element{
		TextField(),
		{Tag: "textarea"},
		{Tag: "div", ContentEditable: true},
		{Tag: "INPUT", Type: "Email"},
	}
	for _, el := range surfaces {
		ctrl := &fakeController{status: types.Idle}
		d := NewDispatcher(ctrl)

		assert.Equal(t, Passthrough, d.Dispatch(Event{Key: KeySpace, Target: el}))
		assert.Equal(t, Passthrough, d.Dispatch(Event{Key: "w", Active: el}))
		assert.Zero(t, ctrl.starts)
		assert.Empty(t, ctrl.directions)
	}
}

func TestNonTextInputsDoNotCaptureKeys(t *testing.T) {
	for _, el := range []*Element{{Tag: "input", Type: "checkbox"}, {Tag: "button"}, nil} {
		assert.False(t, IsTextEditing(el))
	}
	ctrl := &fakeController{status: types.Idle}
	d := NewDispatcher(ctrl)
	assert.Equal(t, Handled, d.Dispatch(Event{Key: KeySpace, Target: &Element{Tag: "input", Type: "checkbox"}}))
	assert.Equal(t, 1, ctrl.starts)
}
