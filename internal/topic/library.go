package topic

import (
	"strings"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
)

// QuizSummary is the listing view of a library quiz; it omits questions and
// therefore answer keys.
type QuizSummary struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Subject          catalog.Subject    `json:"subject"`
	Topic            string             `json:"topic"`
	Chapter          string             `json:"chapter"`
	Difficulty       catalog.Difficulty `json:"difficulty"`
	QuestionCount    int                `json:"question_count"`
	TimeLimitMinutes int                `json:"time_limit_minutes,omitempty"`
}

// Summarize converts a quiz to its listing view.
func Summarize(q catalog.Quiz) QuizSummary {
	return QuizSummary{
		ID:               q.ID,
		Title:            q.Title,
		Description:      q.Description,
		Subject:          q.Subject,
		Topic:            q.Topic,
		Chapter:          q.Chapter,
		Difficulty:       q.Difficulty,
		QuestionCount:    len(q.Questions),
		TimeLimitMinutes: q.TimeLimitMinutes,
	}
}

// MatchQuizzes filters the library to subject and, when topic is set, to
// quizzes whose topic contains or is contained by it. If that leaves nothing
// it falls back to related quizzes: the quiz topic contains the first word of
// topic, or any of its words longer than three characters. The result may be
// empty.
func MatchQuizzes(quizzes []catalog.Quiz, subject catalog.Subject, topic string) []catalog.Quiz {
	needle := fold(strings.TrimSpace(topic))

	var matched []catalog.Quiz
	for _, q := range quizzes {
		if q.Subject != subject {
			continue
		}
		if needle == "" || similarFolded(fold(q.Topic), needle) {
			matched = append(matched, q)
		}
	}
	if len(matched) > 0 || needle == "" {
		return matched
	}

	words := strings.Split(needle, " ")
	var related []catalog.Quiz
	for _, q := range quizzes {
		if q.Subject != subject {
			continue
		}
		quizTopic := fold(q.Topic)
		if strings.Contains(quizTopic, words[0]) || anyLongWordIn(quizTopic, words) {
			related = append(related, q)
		}
	}
	return related
}

func anyLongWordIn(s string, words []string) bool {
	for _, w := range words {
		if len(w) > 3 && strings.Contains(s, w) {
			return true
		}
	}
	return false
}
