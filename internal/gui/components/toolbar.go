package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the trigger controls. The "Next Item" button is the primary
// control; "Previous" walks the sequence backwards.
type Toolbar struct {
	container      *fyne.Container
	NextButton     *widget.Button
	PreviousButton *widget.Button

	nextHandler     func()
	previousHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	t.PreviousButton = widget.NewButton("Previous", t.onPrevious)

	t.NextButton = widget.NewButton("Next Item", t.onNext)
	t.NextButton.Importance = widget.HighImportance

	t.container = container.NewCenter(
		container.NewHBox(
			t.PreviousButton,
			widget.NewSeparator(),
			t.NextButton,
		),
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetNextHandler(handler func()) {
	t.nextHandler = handler
}

func (t *Toolbar) SetPreviousHandler(handler func()) {
	t.previousHandler = handler
}

func (t *Toolbar) onNext() {
	if t.nextHandler != nil {
		t.nextHandler()
	}
}

func (t *Toolbar) onPrevious() {
	if t.previousHandler != nil {
		t.previousHandler()
	}
}
