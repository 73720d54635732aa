package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
	"github.com/Akshansingh/EDTECHPCM/internal/topic"
)

// Session hosts one quiz attempt: the resolved question set and its State.
type Session struct {
	ID               uuid.UUID          `json:"id"`
	Subject          catalog.Subject    `json:"subject"`
	Topic            string             `json:"topic"`
	MatchedTopic     string             `json:"matched_topic,omitempty"`
	Outcome          topic.Outcome      `json:"outcome,omitempty"`
	QuizID           string             `json:"quiz_id,omitempty"`
	Title            string             `json:"title"`
	Questions        []catalog.Question `json:"questions"`
	TimeLimitMinutes int                `json:"time_limit_minutes,omitempty"`
	State            State              `json:"state"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// Clone returns a copy that shares only the immutable question data.
func (s *Session) Clone() *Session {
	c := *s
	c.State = s.State.clone()
	return &c
}

// Score is the current exact-match score.
func (s *Session) Score() int {
	return Score(s.Questions, s.State.Selected)
}

// QuestionView is the answering-phase view of the current question. It
// never carries the correct answer.
type QuestionView struct {
	Index          int      `json:"index"`
	ID             int      `json:"id"`
	Text           string   `json:"text"`
	Options        []string `json:"options"`
	Selected       int      `json:"selected"`
	HasExplanation bool     `json:"has_explanation"`
	Explanation    string   `json:"explanation,omitempty"`
}

// View is the client-facing snapshot of a session.
type View struct {
	ID               uuid.UUID       `json:"id"`
	Subject          catalog.Subject `json:"subject"`
	Topic            string          `json:"topic"`
	MatchedTopic     string          `json:"matched_topic,omitempty"`
	Outcome          topic.Outcome   `json:"outcome,omitempty"`
	QuizID           string          `json:"quiz_id,omitempty"`
	Title            string          `json:"title"`
	TimeLimitMinutes int             `json:"time_limit_minutes,omitempty"`
	QuestionCount    int             `json:"question_count"`
	Current          int             `json:"current"`
	Answered         int             `json:"answered"`
	ShowResults      bool            `json:"show_results"`
	Question         *QuestionView   `json:"question,omitempty"`
	Controls         Controls        `json:"controls"`
	Score            *int            `json:"score,omitempty"`
	Review           []ReviewItem    `json:"review,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// View renders the session for clients. Answer keys appear only once the
// attempt is in results; explanations only while visible.
func (s *Session) View() View {
	v := View{
		ID:               s.ID,
		Subject:          s.Subject,
		Topic:            s.Topic,
		MatchedTopic:     s.MatchedTopic,
		Outcome:          s.Outcome,
		QuizID:           s.QuizID,
		Title:            s.Title,
		TimeLimitMinutes: s.TimeLimitMinutes,
		QuestionCount:    len(s.Questions),
		Current:          s.State.Current,
		ShowResults:      s.State.ShowResults,
		Controls:         ControlsFor(s.Questions, s.State),
		UpdatedAt:        s.UpdatedAt,
	}
	for _, sel := range s.State.Selected {
		if sel != Unanswered {
			v.Answered++
		}
	}
	if !v.Controls.Ready {
		return v
	}

	if s.State.ShowResults {
		score := s.Score()
		v.Score = &score
		v.Review, _ = Review(s.Questions, s.State)
		return v
	}

	q := s.Questions[s.State.Current]
	qv := &QuestionView{
		Index:          s.State.Current,
		ID:             q.ID,
		Text:           q.Text,
		Options:        q.Options,
		Selected:       s.State.Selected[s.State.Current],
		HasExplanation: q.HasExplanation(),
	}
	if s.State.ShowExplanation {
		qv.Explanation = q.Explanation
	}
	v.Question = qv
	return v
}
