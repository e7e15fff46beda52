//go:build !amd64 && !arm64

package blas

func init() {
	currentLevel = DispatchScalar
}
