package company

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// BloomLevel is the cognitive depth expected for a skill.
type BloomLevel string

const (
	BloomConceptual  BloomLevel = "CU"
	BloomApplication BloomLevel = "AP"
	BloomAnalysis    BloomLevel = "AN"
	BloomEvaluation  BloomLevel = "EV"
	BloomCreation    BloomLevel = "CR"
)

var bloomLabels = map[BloomLevel]string{
	BloomConceptual:  "Conceptual Understanding",
	BloomApplication: "Application",
	BloomAnalysis:    "Analysis",
	BloomEvaluation:  "Evaluation",
	BloomCreation:    "Creation",
}

// BloomLevels returns the taxonomy in ascending depth.
func BloomLevels() []BloomLevel {
	return []BloomLevel{BloomConceptual, BloomApplication, BloomAnalysis, BloomEvaluation, BloomCreation}
}

func (b BloomLevel) Label() string {
	return bloomLabels[b]
}

func (b BloomLevel) Valid() bool {
	_, ok := bloomLabels[b]
	return ok
}

// Skill is one expected competency of a company. Name is unique within a
// company's skill list.
type Skill struct {
	Name        string     `json:"name" validate:"required"`
	BloomLevel  BloomLevel `json:"bloom_level" validate:"required,oneof=CU AP AN EV CR"`
	Level       int        `json:"level" validate:"min=1,max=10"`
	Proficiency int        `json:"proficiency" validate:"min=1,max=10"`
	Topics      []string   `json:"topics"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func skillValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks the skill against its nominal bounds.
func (s Skill) Validate() error {
	return skillValidator().Struct(s)
}

// Clone returns a copy that shares no memory with s.
func (s Skill) Clone() Skill {
	out := s
	if s.Topics != nil {
		out.Topics = make([]string, len(s.Topics))
		copy(out.Topics, s.Topics)
	}
	return out
}
