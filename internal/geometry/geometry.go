// Package geometry is the pure 2D math kernel shared by venue areas,
// booths and layout elements. Coordinates follow screen conventions:
// +x right, +y down, rotations in clockwise degrees.
package geometry

import "math"

const earthRadiusKm = 6371

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a rectangle positioned by its top-left corner, optionally
// rotated about its own center.
type Rect struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Corners returns the four world-space corners of the rectangle after
// rotating it about its center. The unrotated case returns the exact
// axis-aligned corners without going through trigonometry.
func (r Rect) Corners() [4]Point {
	if r.Rotation == 0 {
		return [4]Point{
			{r.X, r.Y},
			{r.X + r.Width, r.Y},
			{r.X + r.Width, r.Y + r.Height},
			{r.X, r.Y + r.Height},
		}
	}

	c := r.Center()
	rad := r.Rotation * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	local := [4]Point{
		{-r.Width / 2, -r.Height / 2},
		{r.Width / 2, -r.Height / 2},
		{r.Width / 2, r.Height / 2},
		{-r.Width / 2, r.Height / 2},
	}

	var out [4]Point
	for i, p := range local {
		// Clockwise rotation in a +y-down coordinate system.
		out[i] = Point{
			X: c.X + p.X*cos - p.Y*sin,
			Y: c.Y + p.X*sin + p.Y*cos,
		}
	}
	return out
}

// BoundingBox returns the axis-aligned bounds of the possibly rotated
// rectangle.
func (r Rect) BoundingBox() Bounds {
	if r.Rotation == 0 {
		return Bounds{
			MinX: r.X,
			MinY: r.Y,
			MaxX: r.X + r.Width,
			MaxY: r.Y + r.Height,
		}
	}

	corners := r.Corners()
	b := Bounds{MinX: corners[0].X, MinY: corners[0].Y, MaxX: corners[0].X, MaxY: corners[0].Y}
	for _, p := range corners[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// OverlapsStrict reports whether two boxes overlap with a positive-area
// intersection. Boxes that merely share an edge do NOT overlap. Layout
// elements use this variant — decorative elements may legitimately touch.
func OverlapsStrict(a, b Bounds) bool {
	return !(a.MaxX <= b.MinX || b.MaxX <= a.MinX || a.MaxY <= b.MinY || b.MaxY <= a.MinY)
}

// OverlapsInclusive reports whether two boxes overlap, counting shared
// edges as overlap. Booths and venue areas use this variant — physical
// units must not touch.
func OverlapsInclusive(a, b Bounds) bool {
	return !(a.MaxX < b.MinX || b.MaxX < a.MinX || a.MaxY < b.MinY || b.MaxY < a.MinY)
}

// ContainsBounds reports whether inner lies entirely within b, edges
// included.
func (b Bounds) ContainsBounds(inner Bounds) bool {
	return inner.MinX >= b.MinX && inner.MaxX <= b.MaxX &&
		inner.MinY >= b.MinY && inner.MaxY <= b.MaxY
}

// Union returns the smallest bounds containing both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Distance returns the Euclidean distance between two points, rounded
// to two decimal places.
func Distance(a, b Point) float64 {
	return Round2(math.Hypot(b.X-a.X, b.Y-a.Y))
}

// NormalizeDegrees maps any angle into [0, 360). Negative inputs wrap:
// -10 becomes 350.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Haversine returns the great-circle distance in kilometers between two
// coordinates, rounded to two decimal places.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return Round2(earthRadiusKm * c)
}

func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
