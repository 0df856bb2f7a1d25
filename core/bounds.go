package core

// Box is an axis-aligned bounding box over board cells.
// MinX/MinY are inclusive, MaxX/MaxY are exclusive.
type Box struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Intersect returns the box covering the region where a and b could overlap.
// If the boxes are disjoint the result is empty (Min >= Max on some axis).
func (a Box) Intersect(b Box) Box {
	return Box{
		MinX: max(a.MinX, b.MinX),
		MaxX: min(a.MaxX, b.MaxX),
		MinY: max(a.MinY, b.MinY),
		MaxY: min(a.MaxY, b.MaxY),
	}
}
