package config

type Config struct {
	SchedulePath string
	InputPath    string
	FrameCount   int
	OutputPath   string
	PreviewPath  string
	PreviewW     int
	PreviewH     int
	ShowStats    bool

	// One-shot mode: build a single-track schedule from flags instead of a
	// schedule file
	Indexes          string
	CurveWindow      bool
	From             int
	ToExcl           int
	StrengthFrom     float64
	StrengthTo       float64
	Shape            string
	RevertAtMidpoint bool
}
