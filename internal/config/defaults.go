package config

const (
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultMinOverlap      = 1
	defaultMaxGapSeconds   = 5.0
	defaultSampleRatio     = 0.2
	defaultMaxSampleChars  = 2000
	defaultMismatchedBelow = 0.3
	defaultAcceptableAbove = 0.5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Linearizer: Linearizer{
			MinOverlap:    defaultMinOverlap,
			MaxGapSeconds: defaultMaxGapSeconds,
		},
		Similarity: Similarity{
			SampleRatio:     defaultSampleRatio,
			MaxSampleChars:  defaultMaxSampleChars,
			MismatchedBelow: defaultMismatchedBelow,
			AcceptableAbove: defaultAcceptableAbove,
		},
	}
}
