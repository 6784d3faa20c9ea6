package internal

// Which half-plane of a directed line a point lies in. Left is the
// counterclockwise side in a y-up coordinate system.
type Side int

const (
	Right Side = -1
	On    Side = 0
	Left  Side = 1
)

func (s Side) Opposite() Side {
	return -s
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case On:
		return "on"
	}
	return "invalid"
}

// Twice the signed area of the triangle (a, b, p). Positive when p is left of
// the directed line a->b, negative when right, zero when collinear.
func SignedDistance(a, b, p Point) float64 {
	return (p.Y-a.Y)*(b.X-a.X) - (b.Y-a.Y)*(p.X-a.X)
}

func FindSide(a, b, p Point) Side {
	d := SignedDistance(a, b, p)
	if d > 0 {
		return Left
	}
	if d < 0 {
		return Right
	}
	return On
}
