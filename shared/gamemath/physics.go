package gamemath

// ApplyFriction reduces speed toward zero by friction amount, landing on
// exactly zero instead of overshooting.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Accelerate advances horizontal speed one step toward dir (+1 right, -1 left).
// Moving against dir applies the stronger turnaround constant first.
func Accelerate(speedX, dir, accel, turnAround, topSpeed float64) float64 {
	if speedX*dir <= 0 {
		speedX += dir * turnAround
	} else if speedX*dir < topSpeed {
		speedX += dir * accel
	}
	return ClampSpeed(speedX, topSpeed)
}
