//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures run the scalar paths. Batches are still sized as
	// if registers were 16 bytes wide.
	currentLevel = DispatchScalar
}

// HasHalfConversion reports whether the CPU converts float16 in hardware.
func HasHalfConversion() bool {
	return false
}
