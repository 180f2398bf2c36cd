package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	DisplayAreaWidth  = 600
	DisplayAreaHeight = 240
	itemTextSize      = 24
)

// ItemDisplay is the visible text region showing the current item, centered
// on a white background.
type ItemDisplay struct {
	container *fyne.Container
	itemText  *canvas.Text
}

func NewItemDisplay(initial string) *ItemDisplay {
	background := canvas.NewRectangle(color.White)
	background.SetMinSize(fyne.NewSize(DisplayAreaWidth, DisplayAreaHeight))

	itemText := canvas.NewText(initial, color.Black)
	itemText.TextSize = itemTextSize
	itemText.Alignment = fyne.TextAlignCenter

	content := container.NewStack(
		background,
		container.NewCenter(itemText),
	)

	return &ItemDisplay{
		container: content,
		itemText:  itemText,
	}
}

func (d *ItemDisplay) GetContainer() *fyne.Container {
	return d.container
}

// SetItem replaces the visible text. Must be called on the UI thread.
func (d *ItemDisplay) SetItem(item string) {
	d.itemText.Text = item
	d.itemText.Refresh()
}

// Item returns the currently visible text.
func (d *ItemDisplay) Item() string {
	return d.itemText.Text
}
