// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	return int16(FloatToInt(x, 16))
}

// MaxAmplitude is the largest positive value representable at bitDepth.
func MaxAmplitude(bitDepth int) int {
	return 1<<(bitDepth-1) - 1
}

// FloatToInt clamps x to [-1, 1] and scales it to a signed integer of bitDepth bits.
func FloatToInt(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by the positive max so +1.0 does not overflow
	return int(float64(x) * float64(MaxAmplitude(bitDepth)))
}

// IntToFloat normalizes a signed PCM value of bitDepth bits into [-1, 1).
func IntToFloat(v int, bitDepth int) float32 {
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}
