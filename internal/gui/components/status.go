package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container     *fyne.Container
	positionLabel *widget.Label
	triggerLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	positionLabel := widget.NewLabel("Item -- of --")
	triggerLabel := widget.NewLabel("Triggers: 0")

	statusContainer := container.NewHBox(
		positionLabel,
		widget.NewSeparator(),
		triggerLabel,
	)

	return &StatusBar{
		container:     statusContainer,
		positionLabel: positionLabel,
		triggerLabel:  triggerLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetPosition updates the "Item k of N" readout. Must be called on the UI
// thread.
func (sb *StatusBar) SetPosition(position, total int) {
	sb.positionLabel.SetText(fmt.Sprintf("Item %d of %d", position, total))
}

// SetTriggers updates the trigger counter. Must be called on the UI thread.
func (sb *StatusBar) SetTriggers(count uint64) {
	sb.triggerLabel.SetText(fmt.Sprintf("Triggers: %d", count))
}

// Position returns the current position readout text.
func (sb *StatusBar) Position() string {
	return sb.positionLabel.Text
}

// Triggers returns the current trigger readout text.
func (sb *StatusBar) Triggers() string {
	return sb.triggerLabel.Text
}
