package chess

// Direction is a compass direction on the board. It carries no arithmetic;
// move generators use it as a key into their own offset and ray tables.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
	DirectionCount
)

// Directions lists every direction in declaration order.
var Directions = [DirectionCount]Direction{
	North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest,
}

// Index returns the direction as an array index.
func (d Direction) Index() int {
	return int(d)
}

// String returns the compass abbreviation of the direction.
func (d Direction) String() string {
	names := []string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"}
	if d < DirectionCount {
		return names[d]
	}
	return "?"
}
