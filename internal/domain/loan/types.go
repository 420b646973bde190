package loan

import "errors"

var ErrInvalidDirection = errors.New("invalid loan direction")

// Direction is recorded from the recorder's point of view: "given" means the
// recorder lent money, "taken" means the recorder borrowed it.
type Direction string

const (
	DirectionGiven Direction = "given"
	DirectionTaken Direction = "taken"
)

func NewDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionGiven, DirectionTaken:
		return Direction(s), nil
	default:
		return "", ErrInvalidDirection
	}
}

func (d Direction) String() string {
	return string(d)
}
