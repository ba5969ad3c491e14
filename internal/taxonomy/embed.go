package taxonomy

import (
	_ "embed"
	"os"
)

//go:embed data/skills.json
var defaultSkillsJSON []byte

//go:embed data/sectors.json
var defaultSectorsJSON []byte

// Default compiles the embedded reference data shipped with the binary.
func Default() (*Taxonomy, *Vocabulary, error) {
	t, err := CompileSkills(defaultSkillsJSON)
	if err != nil {
		return nil, nil, err
	}
	v, err := CompileSectors(defaultSectorsJSON)
	if err != nil {
		return nil, nil, err
	}
	return t, v, nil
}

// LoadFiles compiles reference data from override files. An empty path falls
// back to the embedded data for that side, so either file can be overridden
// independently.
func LoadFiles(skillsPath, sectorsPath string) (*Taxonomy, *Vocabulary, error) {
	skillsData := defaultSkillsJSON
	if skillsPath != "" {
		data, err := os.ReadFile(skillsPath)
		if err != nil {
			return nil, nil, &LoadError{Source: skillsPath, Message: "cannot read skills file", Cause: err}
		}
		skillsData = data
	}

	sectorsData := defaultSectorsJSON
	if sectorsPath != "" {
		data, err := os.ReadFile(sectorsPath)
		if err != nil {
			return nil, nil, &LoadError{Source: sectorsPath, Message: "cannot read sectors file", Cause: err}
		}
		sectorsData = data
	}

	t, err := CompileSkills(skillsData)
	if err != nil {
		return nil, nil, err
	}
	v, err := CompileSectors(sectorsData)
	if err != nil {
		return nil, nil, err
	}
	return t, v, nil
}
