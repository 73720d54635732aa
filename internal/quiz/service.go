package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
	"github.com/Akshansingh/EDTECHPCM/internal/topic"
)

// ErrMissingTarget is returned when a start request names neither a subject
// nor a library quiz.
var ErrMissingTarget = errors.New("subject or quiz_id is required")

// Session sources reported to the Recorder.
const (
	SourceTopic   = "topic"
	SourceLibrary = "library"
)

// Recorder receives session lifecycle observations.
type Recorder interface {
	SessionStarted(subject catalog.Subject, source string)
	SessionFinished(subject catalog.Subject, score, total int)
}

type nopRecorder struct{}

func (nopRecorder) SessionStarted(catalog.Subject, string)   {}
func (nopRecorder) SessionFinished(catalog.Subject, int, int) {}

// StartRequest opens a session either by topic resolution or by library quiz.
type StartRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	QuizID  string `json:"quiz_id"`
}

// Service hosts quiz sessions on top of a Store.
type Service struct {
	resolver *topic.Resolver
	store    Store
	recorder Recorder
	logger   zerolog.Logger
	now      func() time.Time
}

// NewService wires the session service. recorder may be nil.
func NewService(resolver *topic.Resolver, store Store, recorder Recorder, logger zerolog.Logger) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		resolver: resolver,
		store:    store,
		recorder: recorder,
		logger:   logger.With().Str("component", "quiz_service").Logger(),
		now:      time.Now,
	}
}

// NewSession builds a fresh session without storing it. Callers report the
// session with Started once it is actually in use.
func (s *Service) NewSession(req StartRequest) (*Session, error) {
	now := s.now().UTC()
	sess := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch {
	case strings.TrimSpace(req.QuizID) != "":
		quiz, err := s.resolver.Catalog().Quiz(strings.TrimSpace(req.QuizID))
		if err != nil {
			return nil, err
		}
		sess.Subject = quiz.Subject
		sess.Topic = quiz.Topic
		sess.QuizID = quiz.ID
		sess.Title = quiz.Title
		sess.Questions = quiz.Questions
		sess.TimeLimitMinutes = quiz.TimeLimitMinutes

	case strings.TrimSpace(req.Subject) != "":
		subject, err := catalog.ParseSubject(req.Subject)
		if err != nil {
			return nil, err
		}
		res := s.resolver.Questions(subject, req.Topic)
		sess.Subject = subject
		sess.Topic = req.Topic
		sess.MatchedTopic = res.MatchedTopic
		sess.Outcome = res.Outcome
		sess.Questions = res.Items
		sess.Title = titleFor(subject, req.Topic, res)

	default:
		return nil, ErrMissingTarget
	}

	sess.State = NewState(len(sess.Questions))
	return sess, nil
}

// Start creates and stores a session.
func (s *Service) Start(ctx context.Context, req StartRequest) (*Session, error) {
	sess, err := s.NewSession(req)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.Started(sess)
	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Str("subject", string(sess.Subject)).
		Str("topic", sess.Topic).
		Str("outcome", string(sess.Outcome)).
		Str("quiz_id", sess.QuizID).
		Int("questions", len(sess.Questions)).
		Msg("quiz session started")
	return sess, nil
}

// Started records that sess went live, either stored or bound to a
// connection.
func (s *Service) Started(sess *Session) {
	source := SourceTopic
	if sess.QuizID != "" {
		source = SourceLibrary
	}
	s.recorder.SessionStarted(sess.Subject, source)
}

// Get loads a stored session.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.Get(ctx, id)
}

// Apply runs one event against a stored session. The bool reports whether
// the event was accepted; a rejected event leaves the session unchanged.
func (s *Service) Apply(ctx context.Context, id uuid.UUID, e Event) (*Session, bool, error) {
	if err := e.Validate(); err != nil {
		return nil, false, err
	}
	var accepted, finished bool
	sess, err := s.store.Update(ctx, id, func(sess *Session) error {
		accepted, finished = s.advance(sess, e)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if finished {
		s.finish(sess)
	}
	return sess, accepted, nil
}

// Step applies e to an in-memory session, which the caller must own
// exclusively for the duration of the call.
func (s *Service) Step(sess *Session, e Event) bool {
	accepted, finished := s.advance(sess, e)
	if finished {
		s.finish(sess)
	}
	return accepted
}

// advance has no side effects beyond sess, so stores may run it more than
// once. finished reports a transition into Results.
func (s *Service) advance(sess *Session, e Event) (accepted, finished bool) {
	wasInResults := sess.State.ShowResults
	next, ok := Transition(sess.Questions, sess.State, e)
	if !ok {
		return false, false
	}
	sess.State = next
	sess.UpdatedAt = s.now().UTC()
	return true, !wasInResults && next.ShowResults
}

func (s *Service) finish(sess *Session) {
	score := sess.Score()
	s.recorder.SessionFinished(sess.Subject, score, len(sess.Questions))
	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Int("score", score).
		Int("total", len(sess.Questions)).
		Msg("quiz session finished")
}

// Close destroys a stored session.
func (s *Service) Close(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debug().Str("session_id", id.String()).Msg("quiz session closed")
	return nil
}

func titleFor(subject catalog.Subject, requested string, res topic.Resolution[catalog.Question]) string {
	switch {
	case res.MatchedTopic != "":
		return res.MatchedTopic + " Quiz"
	case strings.TrimSpace(requested) != "":
		return strings.TrimSpace(requested) + " Quiz"
	default:
		return subject.Title() + " Quiz"
	}
}
