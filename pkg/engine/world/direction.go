package world

// Direction represents a cardinal direction on the ground plane.
// North is -Z, South is +Z, East is +X, West is -X.
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// SearchOrder is the neighbour order used by flood fills and path search.
// Changing it changes tie-breaking between equal-length paths.
var SearchOrder = []Direction{East, West, South, North}

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and z lattice offsets (in cells) for this direction
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Connections is a bitmask of directions, used for neighbour-aware visuals
// such as wall segments joining up.
type Connections uint8

// Bit returns the mask bit for d.
func (d Direction) Bit() Connections {
	if !d.IsValid() {
		return 0
	}
	return 1 << uint(d)
}

// Has returns true if the mask includes d.
func (c Connections) Has(d Direction) bool {
	return c&d.Bit() != 0
}

// With returns the mask with d set.
func (c Connections) With(d Direction) Connections {
	return c | d.Bit()
}
