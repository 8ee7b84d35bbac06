package program

// File is the structure of a program model file.
type File struct {
	Entities []EntityDTO         `yaml:"entities"`
	Flows    map[string][]string `yaml:"flows"`
}

// EntityDTO describes one entity of the analyzed program.
type EntityDTO struct {
	ID    string `yaml:"id"`
	File  string `yaml:"file"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Line  int    `yaml:"line"`
	Text  string `yaml:"text"`
}
