package tape

import (
	"strings"
)

// Motion is a head movement directive.
type Motion int

//go:generate go tool stringer -linecomment -type=Motion
const (
	MOTION_LEFT  = Motion(-1) // L
	MOTION_STAY  = Motion(0)  // S
	MOTION_RIGHT = Motion(1)  // R
)

var motionNames = map[string]Motion{
	"l":     MOTION_LEFT,
	"left":  MOTION_LEFT,
	"s":     MOTION_STAY,
	"stay":  MOTION_STAY,
	"r":     MOTION_RIGHT,
	"right": MOTION_RIGHT,
}

// Valid returns true if the motion is one of Left, Stay or Right.
func (m Motion) Valid() bool {
	return m >= MOTION_LEFT && m <= MOTION_RIGHT
}

// Offset returns the signed head displacement of the motion.
func (m Motion) Offset() int {
	return int(m)
}

// ParseMotion parses L, S, R (or left, stay, right) in any case.
func ParseMotion(text string) (m Motion, err error) {
	m, ok := motionNames[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		err = ErrMotionName(text)
	}

	return
}
