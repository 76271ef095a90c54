package suite

// Suite is a table of scoring checks, loaded from YAML or built in
// code. Each case is scored independently and a mismatch never stops
// the run.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Version     string `yaml:"version,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// Case pairs a game notation with the total its author expects.
type Case struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description,omitempty"`
	Input       string `yaml:"input"`
	Expected    int    `yaml:"expected"`
}
