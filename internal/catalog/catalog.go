package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrQuizNotFound is returned when a library quiz ID is unknown.
var ErrQuizNotFound = errors.New("quiz not found")

// Section is one kind of topic-keyed content plus its per-subject fallback.
type Section[T any] struct {
	Table    *Table[T]
	Fallback map[Subject][]T
}

// NewSection returns an empty section.
func NewSection[T any]() Section[T] {
	return Section[T]{
		Table:    NewTable[T](),
		Fallback: make(map[Subject][]T),
	}
}

// FallbackFor returns a copy of the generic entries for subject.
func (s Section[T]) FallbackFor(subject Subject) []T {
	return slices.Clone(s.Fallback[subject])
}

// Catalog is the static content the resolver and quiz sessions read from.
// It is immutable once validated.
type Catalog struct {
	MasterTopics []string
	Questions    Section[Question]
	Documents    Section[Document]
	Quizzes      []Quiz
}

// Quiz looks up a library quiz by ID.
func (c *Catalog) Quiz(id string) (Quiz, error) {
	for _, q := range c.Quizzes {
		if q.ID == id {
			q.Questions = slices.Clone(q.Questions)
			return q, nil
		}
	}
	return Quiz{}, fmt.Errorf("%w: %s", ErrQuizNotFound, id)
}

// Validate reports every structural defect in the catalog. A catalog that
// fails validation must not be served.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]struct{}, len(c.MasterTopics))
	if len(c.MasterTopics) == 0 {
		errs = append(errs, errors.New("master topic list is empty"))
	}
	for i, label := range c.MasterTopics {
		if strings.TrimSpace(label) == "" {
			errs = append(errs, fmt.Errorf("master topic %d is blank", i))
			continue
		}
		if _, dup := seen[label]; dup {
			errs = append(errs, fmt.Errorf("master topic %q listed twice", label))
		}
		seen[label] = struct{}{}
	}

	for _, subject := range Subjects {
		if len(c.Questions.Fallback[subject]) == 0 {
			errs = append(errs, fmt.Errorf("%s: no fallback questions", subject))
		}
		if len(c.Documents.Fallback[subject]) == 0 {
			errs = append(errs, fmt.Errorf("%s: no fallback documents", subject))
		}
		for _, q := range c.Questions.Fallback[subject] {
			if err := validateQuestion(q); err != nil {
				errs = append(errs, fmt.Errorf("%s fallback: %w", subject, err))
			}
		}

		for _, topic := range c.Questions.Table.Topics(subject) {
			questions, _ := c.Questions.Table.Get(subject, topic)
			if len(questions) == 0 {
				errs = append(errs, fmt.Errorf("%s/%s: empty question list", subject, topic))
			}
			for _, q := range questions {
				if err := validateQuestion(q); err != nil {
					errs = append(errs, fmt.Errorf("%s/%s: %w", subject, topic, err))
				}
			}
		}
		for _, topic := range c.Documents.Table.Topics(subject) {
			docs, _ := c.Documents.Table.Get(subject, topic)
			if len(docs) == 0 {
				errs = append(errs, fmt.Errorf("%s/%s: empty document list", subject, topic))
			}
		}
	}

	quizIDs := make(map[string]struct{}, len(c.Quizzes))
	for _, quiz := range c.Quizzes {
		if quiz.ID == "" {
			errs = append(errs, fmt.Errorf("quiz %q has no id", quiz.Title))
			continue
		}
		if _, dup := quizIDs[quiz.ID]; dup {
			errs = append(errs, fmt.Errorf("quiz %s defined twice", quiz.ID))
		}
		quizIDs[quiz.ID] = struct{}{}
		if !quiz.Subject.Valid() {
			errs = append(errs, fmt.Errorf("quiz %s: %w: %q", quiz.ID, ErrUnknownSubject, quiz.Subject))
		}
		if !quiz.Difficulty.Valid() {
			errs = append(errs, fmt.Errorf("quiz %s: unknown difficulty %q", quiz.ID, quiz.Difficulty))
		}
		if quiz.TimeLimitMinutes < 0 {
			errs = append(errs, fmt.Errorf("quiz %s: negative time limit", quiz.ID))
		}
		if len(quiz.Questions) == 0 {
			errs = append(errs, fmt.Errorf("quiz %s: no questions", quiz.ID))
		}
		for _, q := range quiz.Questions {
			if err := validateQuestion(q); err != nil {
				errs = append(errs, fmt.Errorf("quiz %s: %w", quiz.ID, err))
			}
		}
	}

	return errors.Join(errs...)
}

func validateQuestion(q Question) error {
	if len(q.Options) < 2 {
		return fmt.Errorf("question %d: needs at least 2 options, has %d", q.ID, len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("question %d: correct answer %d out of range", q.ID, q.CorrectAnswer)
	}
	return nil
}
