package core

// Joint is a tracked joint position in sensor space (metres, camera at origin, Z forward)
type Joint struct {
	X, Y, Z float64
}
