package progression

import (
	"fmt"
	"math"
)

// MSE returns the mean squared error between two equally sized sample
// buffers.
func MSE(a, b []byte) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("mse: length mismatch %d != %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum / float64(len(a)), nil
}

// PSNR returns the peak signal-to-noise ratio in dB for 8-bit samples.
// Identical buffers yield +Inf.
func PSNR(a, b []byte) (float64, error) {
	mse, err := MSE(a, b)
	if err != nil {
		return 0, err
	}
	return psnrFromMSE(mse), nil
}

func psnrFromMSE(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}
