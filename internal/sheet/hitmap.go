package sheet

// Region IDs registered while a sheet is presented.
const (
	regionOverlay = "overlay"
	regionBody    = "sheet"
	regionCancel  = "cancel"
	regionAction  = "action"
)

// Region is a clickable area. Data carries whatever the owner needs to act on
// a hit; for action buttons it is the button's tap handler.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap resolves mouse coordinates to regions. Regions added later sit on
// top of earlier ones.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region.
func (m *HitMap) Add(id string, r Rect, data any) {
	m.regions = append(m.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (m *HitMap) Test(x, y int) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Rect.Contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

// Clear removes every region.
func (m *HitMap) Clear() {
	m.regions = m.regions[:0]
}

// Regions returns the registered regions in insertion order.
func (m *HitMap) Regions() []Region {
	return m.regions
}
