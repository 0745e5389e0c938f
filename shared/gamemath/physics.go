package gamemath

// Approach moves current toward target by at most step, without overshoot.
// Covers both acceleration (target is a max speed) and deceleration (target
// is zero) with a single rate.
func Approach(current, target, step float64) float64 {
	if current < target {
		current += step
		if current > target {
			return target
		}
		return current
	}
	if current > target {
		current -= step
		if current < target {
			return target
		}
		return current
	}
	return current
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
