// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assessment

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/mdmze/advice-engine/pkg/types"
)

// LoadDefinition reads an assessment definition from a YAML file and
// validates its scoring ranges before returning it.
func LoadDefinition(path string) (types.Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Assessment{}, fmt.Errorf("reading definition file: %w", err)
	}
	var def types.Assessment
	if err := yaml.Unmarshal(data, &def); err != nil {
		return types.Assessment{}, fmt.Errorf("parsing definition file: %w", err)
	}
	if def.ID == "" || len(def.Questions) == 0 || len(def.Ranges) == 0 {
		return types.Assessment{}, fmt.Errorf("definition file %s: id, questions, and ranges are required", path)
	}
	if err := ValidateRanges(def); err != nil {
		return types.Assessment{}, err
	}
	return def, nil
}

// answerFile is the on-disk form of a completed response: question id to
// chosen option value.
type answerFile struct {
	Answers map[string]int `yaml:"answers"`
}

// LoadAnswers reads an answer set from a YAML file.
func LoadAnswers(path string) (types.AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	var af answerFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return nil, fmt.Errorf("parsing answers file: %w", err)
	}
	if len(af.Answers) == 0 {
		return nil, fmt.Errorf("answers file %s: no answers", path)
	}
	return types.AnswerSet(af.Answers), nil
}
