// Package state defines the phases of the fly-to-star cinematic.
package state

// Phase is the current step of the cinematic
type Phase int

const (
	Idle Phase = iota
	SelectingTarget
	RotatingToTarget
	ExpandingFOV
	MovingToTarget
	RevertingFOV
	BloomAndEnlarge
	Whiteout
	FadingToBlack
	ReturningBloom
	ReturningPosition
	ReturningLook
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case SelectingTarget:
		return "SelectingTarget"
	case RotatingToTarget:
		return "RotatingToTarget"
	case ExpandingFOV:
		return "ExpandingFOV"
	case MovingToTarget:
		return "MovingToTarget"
	case RevertingFOV:
		return "RevertingFOV"
	case BloomAndEnlarge:
		return "BloomAndEnlarge"
	case Whiteout:
		return "Whiteout"
	case FadingToBlack:
		return "FadingToBlack"
	case ReturningBloom:
		return "ReturningBloom"
	case ReturningPosition:
		return "ReturningPosition"
	case ReturningLook:
		return "ReturningLook"
	default:
		return "Unknown"
	}
}

// Returning reports whether p is part of the return-to-home sequence
func (p Phase) Returning() bool {
	return p >= ReturningBloom && p <= ReturningLook
}

// Going reports whether p is part of the go-to-star sequence
func (p Phase) Going() bool {
	return p >= SelectingTarget && p <= FadingToBlack
}
