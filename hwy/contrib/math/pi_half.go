package math

import "github.com/ajroetker/go-elementwise/hwy"

// SinPiHalf computes sin(π·x) in half precision. The input is widened
// exactly and the float64 result is narrowed once through float32.
func SinPiHalf(x hwy.Float16) hwy.Float16 {
	return hwy.NewFloat16FromFloat64(sinPi64(x.Float64()))
}

// CosPiHalf computes cos(π·x) in half precision.
func CosPiHalf(x hwy.Float16) hwy.Float16 {
	return hwy.NewFloat16FromFloat64(cosPi64(x.Float64()))
}

// TanPiHalf computes tan(π·x) in half precision.
func TanPiHalf(x hwy.Float16) hwy.Float16 {
	return hwy.NewFloat16FromFloat64(tanPi64(x.Float64()))
}
