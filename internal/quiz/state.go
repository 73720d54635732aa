package quiz

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
)

// Unanswered marks a question with no selected option.
const Unanswered = -1

// ErrUnknownEvent is returned for event types the state machine does not know.
var ErrUnknownEvent = errors.New("unknown event type")

// State is the complete mutable state of one quiz attempt. While answering,
// Current is the question on screen; once ShowResults is set the attempt is
// finished and only reset is accepted.
type State struct {
	Current         int   `json:"current"`
	Selected        []int `json:"selected"`
	ShowExplanation bool  `json:"show_explanation"`
	ShowResults     bool  `json:"show_results"`
}

// NewState returns the initial state for n questions.
func NewState(n int) State {
	selected := make([]int, n)
	for i := range selected {
		selected[i] = Unanswered
	}
	return State{Selected: selected}
}

func (s State) clone() State {
	s.Selected = slices.Clone(s.Selected)
	return s
}

// EventType enumerates user actions.
type EventType string

const (
	EventSelectAnswer      EventType = "select_answer"
	EventNext              EventType = "next"
	EventPrev              EventType = "prev"
	EventToggleExplanation EventType = "toggle_explanation"
	EventReset             EventType = "reset"
)

// Event is one user action. Question and Option only apply to select_answer.
type Event struct {
	Type     EventType `json:"type"`
	Question int       `json:"question"`
	Option   int       `json:"option"`
}

// SelectAnswer picks option for the question at index question.
func SelectAnswer(question, option int) Event {
	return Event{Type: EventSelectAnswer, Question: question, Option: option}
}

// Next advances, or enters Results from the last question.
func Next() Event { return Event{Type: EventNext} }

// Prev steps back one question.
func Prev() Event { return Event{Type: EventPrev} }

// ToggleExplanation flips explanation visibility for the current question.
func ToggleExplanation() Event { return Event{Type: EventToggleExplanation} }

// Reset returns to the first question with every answer cleared.
func Reset() Event { return Event{Type: EventReset} }

// Validate checks that the event type is known.
func (e Event) Validate() error {
	switch e.Type {
	case EventSelectAnswer, EventNext, EventPrev, EventToggleExplanation, EventReset:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
}

// Transition applies e to s and reports whether the event was accepted.
// A rejected event leaves the state untouched, the same way a disabled
// control would. The input state is never mutated.
func Transition(questions []catalog.Question, s State, e Event) (State, bool) {
	n := len(questions)
	if e.Type == EventReset {
		return NewState(n), true
	}
	// No questions, or a state that does not belong to this question set.
	if n == 0 || len(s.Selected) != n || s.Current < 0 || s.Current >= n {
		return s, false
	}
	if s.ShowResults {
		return s, false
	}

	switch e.Type {
	case EventSelectAnswer:
		if e.Question < 0 || e.Question >= n {
			return s, false
		}
		if e.Option < 0 || e.Option >= len(questions[e.Question].Options) {
			return s, false
		}
		next := s.clone()
		next.Selected[e.Question] = e.Option
		return next, true

	case EventNext:
		if s.Selected[s.Current] == Unanswered {
			return s, false
		}
		next := s.clone()
		if s.Current < n-1 {
			next.Current++
			next.ShowExplanation = false
		} else {
			next.ShowResults = true
		}
		return next, true

	case EventPrev:
		if s.Current == 0 {
			return s, false
		}
		next := s.clone()
		next.Current--
		next.ShowExplanation = false
		return next, true

	case EventToggleExplanation:
		if !questions[s.Current].HasExplanation() {
			return s, false
		}
		next := s.clone()
		next.ShowExplanation = !next.ShowExplanation
		return next, true
	}
	return s, false
}

// Score counts exact matches between selections and correct answers.
func Score(questions []catalog.Question, selected []int) int {
	score := 0
	for i, q := range questions {
		if i < len(selected) && selected[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// OptionMark annotates an option in the results review.
type OptionMark string

const (
	MarkNone            OptionMark = ""
	MarkCorrect         OptionMark = "correct"
	MarkIncorrectChoice OptionMark = "incorrect_choice"
)

// ReviewOption is one option of a reviewed question.
type ReviewOption struct {
	Text string     `json:"text"`
	Mark OptionMark `json:"mark,omitempty"`
}

// ReviewItem is the read-only results view of one question.
type ReviewItem struct {
	QuestionID    int            `json:"question_id"`
	Text          string         `json:"text"`
	Options       []ReviewOption `json:"options"`
	Selected      int            `json:"selected"`
	CorrectAnswer int            `json:"correct_answer"`
	Correct       bool           `json:"correct"`
	Explanation   string         `json:"explanation,omitempty"`
}

// Review builds the per-question results view. It returns false unless the
// attempt is in results.
func Review(questions []catalog.Question, s State) ([]ReviewItem, bool) {
	if !s.ShowResults || len(s.Selected) != len(questions) {
		return nil, false
	}
	items := make([]ReviewItem, len(questions))
	for i, q := range questions {
		chosen := s.Selected[i]
		options := make([]ReviewOption, len(q.Options))
		for j, text := range q.Options {
			options[j] = ReviewOption{Text: text}
			switch {
			case j == q.CorrectAnswer:
				options[j].Mark = MarkCorrect
			case j == chosen:
				options[j].Mark = MarkIncorrectChoice
			}
		}
		items[i] = ReviewItem{
			QuestionID:    q.ID,
			Text:          q.Text,
			Options:       options,
			Selected:      chosen,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       chosen == q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	return items, true
}

// Controls describes which actions are currently enabled. Ready is false when
// there is nothing to render.
type Controls struct {
	Ready                bool `json:"ready"`
	CanSelect            bool `json:"can_select"`
	CanNext              bool `json:"can_next"`
	CanPrev              bool `json:"can_prev"`
	CanToggleExplanation bool `json:"can_toggle_explanation"`
	IsLast               bool `json:"is_last"`
}

// ControlsFor derives control availability from the same guards Transition
// applies.
func ControlsFor(questions []catalog.Question, s State) Controls {
	n := len(questions)
	if n == 0 || len(s.Selected) != n || s.Current < 0 || s.Current >= n {
		return Controls{}
	}
	c := Controls{Ready: true, IsLast: s.Current == n-1}
	if s.ShowResults {
		return c
	}
	c.CanSelect = true
	c.CanNext = s.Selected[s.Current] != Unanswered
	c.CanPrev = s.Current > 0
	c.CanToggleExplanation = questions[s.Current].HasExplanation()
	return c
}
