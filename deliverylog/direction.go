package deliverylog

import "fmt"

// Direction tells whether an entry records an inbound receipt or an outbound dispatch
type Direction int

const (
	Incoming Direction = iota + 1
	Outgoing
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Incoming:
		return "incoming"
	case Outgoing:
		return "outgoing"
	default:
		return "unknown"
	}
}

// NewDirection creates a Direction from a string
func NewDirection(s string) Direction {
	switch s {
	case "incoming":
		return Incoming
	case "outgoing":
		return Outgoing
	default:
		return Incoming
	}
}

// Validate checks if the direction is valid
func (d Direction) Validate() error {
	if d != Incoming && d != Outgoing {
		return fmt.Errorf("invalid direction: %d", d)
	}
	return nil
}
