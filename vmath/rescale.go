package vmath

// Rescale maps coord from an axis of length oldExtent onto an axis of length newExtent,
// preserving its relative position. Fractions round up (ceil of coord/oldExtent*newExtent),
// computed in integers so exact ratios never drift to the next cell.
// coord is expected non-negative; a non-positive oldExtent maps everything to 0
func Rescale(coord, oldExtent, newExtent int) int {
	if oldExtent <= 0 || coord <= 0 {
		return 0
	}
	return (coord*newExtent + oldExtent - 1) / oldExtent
}

// RescaleVec applies Rescale independently to each axis
func RescaleVec(v, oldExtent, newExtent Vec2) Vec2 {
	return Vec2{
		X: Rescale(v.X, oldExtent.X, newExtent.X),
		Y: Rescale(v.Y, oldExtent.Y, newExtent.Y),
	}
}
