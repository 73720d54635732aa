package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Subject is one of the fixed syllabus subjects.
type Subject string

const (
	SubjectPhysics   Subject = "physics"
	SubjectChemistry Subject = "chemistry"
	SubjectMath      Subject = "math"
)

// Subjects lists every subject in display order.
var Subjects = []Subject{SubjectPhysics, SubjectChemistry, SubjectMath}

// ErrUnknownSubject is returned when a subject string is not recognised.
var ErrUnknownSubject = errors.New("unknown subject")

// ParseSubject normalises s and checks it against the fixed enumeration.
func ParseSubject(s string) (Subject, error) {
	subject := Subject(strings.ToLower(strings.TrimSpace(s)))
	if !subject.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubject, s)
	}
	return subject, nil
}

// Valid reports whether s is part of the enumeration.
func (s Subject) Valid() bool {
	switch s {
	case SubjectPhysics, SubjectChemistry, SubjectMath:
		return true
	}
	return false
}

// Title is the display form of the subject.
func (s Subject) Title() string {
	return cases.Title(language.English).String(string(s))
}

// Difficulty tiers.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Question is a single multiple-choice item.
type Question struct {
	ID            int      `json:"id" yaml:"id"`
	Text          string   `json:"text" yaml:"text"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correct_answer" yaml:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// HasExplanation reports whether the question carries explanation text.
func (q Question) HasExplanation() bool {
	return strings.TrimSpace(q.Explanation) != ""
}

// Quiz is a titled, ordered question set from the quiz library.
type Quiz struct {
	ID               string     `json:"id" yaml:"id"`
	Title            string     `json:"title" yaml:"title"`
	Description      string     `json:"description" yaml:"description"`
	Subject          Subject    `json:"subject" yaml:"subject"`
	Topic            string     `json:"topic" yaml:"topic"`
	Chapter          string     `json:"chapter" yaml:"chapter"`
	Questions        []Question `json:"questions" yaml:"questions"`
	Difficulty       Difficulty `json:"difficulty" yaml:"difficulty"`
	TimeLimitMinutes int        `json:"time_limit_minutes,omitempty" yaml:"time_limit_minutes,omitempty"`
}

// Document is a previous-year question paper.
type Document struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Year   int    `json:"year" yaml:"year"`
	Source string `json:"source" yaml:"source"`
	URL    string `json:"url" yaml:"url"`
	Pages  int    `json:"pages" yaml:"pages"`
}
