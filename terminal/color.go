package terminal

// RGB stores explicit 8-bit color channels
type RGB struct {
	R, G, B uint8
}
