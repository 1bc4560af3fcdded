package gamemath

import "math"

const sectorCount = 8

// StickSector maps an analog stick reading to one of eight 45° sectors,
// counted counterclockwise from "right". Stick Y grows downward as the
// gamepad reports it. ok is false inside the deadzone.
func StickSector(x, y, deadzone float64) (sector int, ok bool) {
	if math.Hypot(x, y) < deadzone {
		return 0, false
	}
	deg := math.Atan2(-y, x) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	width := 360.0 / sectorCount
	return int(math.Mod(deg+width/2, 360) / width), true
}

// SectorAngle converts a sector to an orientation in world space (Y down).
func SectorAngle(sector int) float64 {
	up := float64(sector) * (2 * math.Pi / sectorCount)
	return NormalizeAngle(-up)
}

// StickAim returns the eight-way aim angle for a stick reading.
func StickAim(x, y, deadzone float64) (float64, bool) {
	sector, ok := StickSector(x, y, deadzone)
	if !ok {
		return 0, false
	}
	return SectorAngle(sector), true
}

// StickStrafe returns +1 or -1 when the stick points into the right or left
// sector, 0 otherwise.
func StickStrafe(x, y, deadzone float64) int {
	sector, ok := StickSector(x, y, deadzone)
	if !ok {
		return 0
	}
	switch sector {
	case 0:
		return 1
	case sectorCount / 2:
		return -1
	}
	return 0
}

// KeyAim returns the aim angle for digital direction keys. A held horizontal
// key takes priority and combines with a vertical key into a diagonal.
func KeyAim(left, right, up, down bool) (float64, bool) {
	var sector int
	switch {
	case left && up:
		sector = 3
	case left && down:
		sector = 5
	case left:
		sector = 4
	case right && up:
		sector = 1
	case right && down:
		sector = 7
	case right:
		sector = 0
	case up:
		sector = 2
	case down:
		sector = 6
	default:
		return 0, false
	}
	return SectorAngle(sector), true
}
