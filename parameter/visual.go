package parameter

// Trail colors (warm band, HSL degrees)
const (
	TrailHueMin = 20.0
	TrailHueMax = 45.0

	TrailSaturation = 1.0
	TrailLightness  = 0.6
)

// Spark colors
const (
	// SparkHueBand is the +/- spread around an explosion's base hue
	SparkHueBand = 30.0

	SparkSaturation   = 1.0
	SparkLightnessMin = 0.4
	SparkLightnessMax = 0.8
)

// Screen
const (
	// CellAspect compensates terminal cells being roughly twice as tall
	// as wide when rasterizing circles
	CellAspect = 2.0

	StarCount = 70
)
