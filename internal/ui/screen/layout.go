package screen

import "fyne.io/fyne/v2"

// columnLayout stacks objects at their minimum size, centered horizontally,
// with the whole column centered vertically. gaps[i] is the space above object i.
type columnLayout struct {
	gaps []float32
}

func (layout *columnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	height := layout.MinSize(objects).Height
	y := (size.Height - height) / 2
	if y < 0 {
		y = 0
	}
	for i, object := range objects {
		if !object.Visible() {
			continue
		}
		y += layout.gap(i)
		objectSize := object.MinSize()
		x := (size.Width - objectSize.Width) / 2
		if x < 0 {
			x = 0
		}
		object.Move(fyne.NewPos(x, y))
		object.Resize(objectSize)
		y += objectSize.Height
	}
}

func (layout *columnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for i, object := range objects {
		if !object.Visible() {
			continue
		}
		objectSize := object.MinSize()
		if objectSize.Width > width {
			width = objectSize.Width
		}
		height += layout.gap(i) + objectSize.Height
	}
	return fyne.NewSize(width, height)
}

func (layout *columnLayout) gap(index int) float32 {
	if index < len(layout.gaps) {
		return layout.gaps[index]
	}
	return 0
}
