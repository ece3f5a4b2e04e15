package sheet

import "math"

// Rect is an axis-aligned rectangle measured in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
// Width and height are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Params are the inputs to the sheet layout.
type Params struct {
	ActionCount     int
	CancelEnabled   bool
	ButtonHeight    int
	VerticalSpacing int
	BottomMargin    int
	HorizontalInset int
	ContainerWidth  int
	ContainerHeight int
}

// Geometry is the computed layout of a sheet.
//
// Sheet is positioned at its closed (off-screen) location. Holder and Cancel
// are relative to the sheet; Buttons and Separators are relative to the holder.
type Geometry struct {
	Sheet      Rect
	Holder     Rect
	Buttons    []Rect
	Separators []Rect
	Cancel     Rect
	HasCancel  bool

	OpenY   int
	ClosedY int
}

// SheetHeight returns the total height of the button stack plus the optional
// cancel button and its spacing.
func SheetHeight(actionCount int, cancelEnabled bool, buttonHeight, verticalSpacing int) int {
	rows := actionCount
	spacing := 0
	if cancelEnabled {
		rows++
		spacing = verticalSpacing
	}
	return buttonHeight*rows + spacing
}

// Compute lays out the sheet for the given parameters. It is a pure function
// and does not guard against sheets taller than the container.
func Compute(p Params) Geometry {
	count := max(p.ActionCount, 0)
	height := SheetHeight(count, p.CancelEnabled, p.ButtonHeight, p.VerticalSpacing)
	holderW := max(p.ContainerWidth-2*p.HorizontalInset, 0)
	holderX := p.ContainerWidth/2 - holderW/2

	g := Geometry{
		Sheet:   Rect{X: 0, Y: p.ContainerHeight, W: p.ContainerWidth, H: height},
		Holder:  Rect{X: holderX, Y: 0, W: holderW, H: p.ButtonHeight * count},
		ClosedY: p.ContainerHeight,
		OpenY:   p.ContainerHeight - (height + p.BottomMargin),
	}

	g.Buttons = make([]Rect, count)
	for i := 0; i < count; i++ {
		g.Buttons[i] = Rect{X: 0, Y: i * p.ButtonHeight, W: holderW, H: p.ButtonHeight}
		if i != count-1 {
			g.Separators = append(g.Separators, Rect{X: 0, Y: g.Buttons[i].Bottom() - 1, W: holderW, H: 1})
		}
	}

	if p.CancelEnabled {
		g.HasCancel = true
		g.Cancel = Rect{
			X: holderX,
			Y: g.Holder.H + p.VerticalSpacing,
			W: holderW,
			H: p.ButtonHeight,
		}
	}
	return g
}

// SheetY interpolates the sheet's vertical position for a presentation
// progress in [0, 1], where 0 is closed and 1 is fully open.
func (g Geometry) SheetY(progress float64) int {
	progress = clamp01(progress)
	return g.ClosedY + int(math.Round(float64(g.OpenY-g.ClosedY)*progress))
}

// ButtonFrame returns the absolute frame of action button i when the sheet
// sits at row sheetY.
func (g Geometry) ButtonFrame(i, sheetY int) Rect {
	return g.Buttons[i].Offset(g.Holder.X, sheetY+g.Holder.Y)
}

// SeparatorFrame returns the absolute frame of separator i when the sheet
// sits at row sheetY.
func (g Geometry) SeparatorFrame(i, sheetY int) Rect {
	return g.Separators[i].Offset(g.Holder.X, sheetY+g.Holder.Y)
}

// CancelFrame returns the absolute frame of the cancel button when the sheet
// sits at row sheetY.
func (g Geometry) CancelFrame(sheetY int) Rect {
	return g.Cancel.Offset(0, sheetY)
}

// SheetFrame returns the absolute frame of the whole sheet at row sheetY.
func (g Geometry) SheetFrame(sheetY int) Rect {
	r := g.Sheet
	r.Y = sheetY
	return r
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
