package domain

// Config represents the mathsheets configuration loaded from mathsheets.yaml.
type Config struct {
	Output    OutputConfig
	Layout    LayoutConfig
	AnswerKey AnswerKeyConfig
}

type OutputConfig struct {
	Dir       string
	NegSheet  string
	CubeSheet string
}

type LayoutConfig struct {
	Columns      int
	NegTitle     string
	CubeTitle    string
	Stylesheet   string
	HeadTemplate string // Optional: path to a custom head template
}

type AnswerKeyConfig struct {
	Enabled bool
	Dir     string
}

// DefaultConfig provides sane defaults if mathsheets.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Dir:       ".",
			NegSheet:  "neg-add-sheet.html",
			CubeSheet: "cube-sheet.html",
		},
		Layout: LayoutConfig{
			Columns:    2,
			NegTitle:   "Negative Numbers",
			CubeTitle:  "Cubes",
			Stylesheet: "sheet.css",
		},
		AnswerKey: AnswerKeyConfig{
			Enabled: true,
			Dir:     "keys",
		},
	}
}
