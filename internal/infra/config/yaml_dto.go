package config

type yamlConfig struct {
	Mathsheets struct {
		Output struct {
			Dir       string `yaml:"dir"`
			NegSheet  string `yaml:"neg_sheet"`
			CubeSheet string `yaml:"cube_sheet"`
		} `yaml:"output"`

		Layout struct {
			Columns      *int   `yaml:"columns"`
			NegTitle     string `yaml:"neg_title"`
			CubeTitle    string `yaml:"cube_title"`
			Stylesheet   string `yaml:"stylesheet"`
			HeadTemplate string `yaml:"head_template"`
		} `yaml:"layout"`

		AnswerKey struct {
			Enabled *bool  `yaml:"enabled"`
			Dir     string `yaml:"dir"`
		} `yaml:"answer_key"`
	} `yaml:"mathsheets"`
}

type envOverrides struct {
	OutDir    *string `env:"MATHSHEETS_OUT_DIR"`
	Columns   *int    `env:"MATHSHEETS_COLUMNS"`
	AnswerKey *bool   `env:"MATHSHEETS_ANSWER_KEY"`
	KeysDir   *string `env:"MATHSHEETS_KEYS_DIR"`
}
