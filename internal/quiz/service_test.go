package quiz

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
	"github.com/Akshansingh/EDTECHPCM/internal/topic"
)

type finished struct {
	subject      catalog.Subject
	score, total int
}

type fakeRecorder struct {
	mu       sync.Mutex
	started  []string
	finished []finished
}

func (r *fakeRecorder) SessionStarted(subject catalog.Subject, source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, string(subject)+"/"+source)
}

func (r *fakeRecorder) SessionFinished(subject catalog.Subject, score, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, finished{subject, score, total})
}

func newTestService(t *testing.T) (*Service, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	resolver := topic.NewResolver(catalog.Default())
	return NewService(resolver, NewMemoryStore(time.Hour), rec, zerolog.Nop()), rec
}

func TestEndToEndNewtonFirstLaw(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, StartRequest{Subject: "physics", Topic: "Newton's First Law of Motion"})
	require.NoError(t, err)
	assert.Equal(t, topic.OutcomeExact, sess.Outcome)
	require.Len(t, sess.Questions, 3)

	for i, answer := range []int{0, 2, 1} {
		_, ok, err := svc.Apply(ctx, sess.ID, SelectAnswer(i, answer))
		require.NoError(t, err)
		require.True(t, ok)
		_, ok, err = svc.Apply(ctx, sess.ID, Next())
		require.NoError(t, err)
		require.True(t, ok)
	}

	final, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, final.State.ShowResults)
	assert.Equal(t, 3, final.Score())

	assert.Equal(t, []string{"physics/topic"}, rec.started)
	assert.Equal(t, []finished{{catalog.SubjectPhysics, 3, 3}}, rec.finished)
}

func TestStartFuzzyTopic(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.Start(context.Background(), StartRequest{Subject: "Chemistry", Topic: "periodic table basics"})
	require.NoError(t, err)
	assert.Equal(t, catalog.SubjectChemistry, sess.Subject)
	assert.Equal(t, topic.OutcomeFuzzy, sess.Outcome)
	assert.Equal(t, "Periodic Table", sess.MatchedTopic)
	assert.Equal(t, "Periodic Table Quiz", sess.Title)
	assert.Equal(t, NewState(3), sess.State)
}

func TestStartLibraryQuiz(t *testing.T) {
	svc, rec := newTestService(t)

	sess, err := svc.Start(context.Background(), StartRequest{QuizID: "math-calculus-derivatives"})
	require.NoError(t, err)
	assert.Equal(t, catalog.SubjectMath, sess.Subject)
	assert.Equal(t, "Derivatives in Calculus", sess.Title)
	assert.Len(t, sess.Questions, 5)
	assert.Equal(t, []string{"math/library"}, rec.started)
}

func TestStartErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, StartRequest{})
	assert.ErrorIs(t, err, ErrMissingTarget)

	_, err = svc.Start(ctx, StartRequest{Subject: "biology"})
	assert.ErrorIs(t, err, catalog.ErrUnknownSubject)

	_, err = svc.Start(ctx, StartRequest{QuizID: "missing"})
	assert.ErrorIs(t, err, catalog.ErrQuizNotFound)
}

func TestApplyRejectedEventLeavesSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sess, err := svc.Start(ctx, StartRequest{Subject: "math", Topic: "Sets"})
	require.NoError(t, err)

	got, ok, err := svc.Apply(ctx, sess.ID, Next())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, sess.State, got.State)
	assert.Equal(t, sess.UpdatedAt, got.UpdatedAt)
}

func TestApplyUnknownEventAndSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Apply(ctx, uuid.New(), Next())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, _, err = svc.Apply(ctx, uuid.New(), Event{Type: "jump"})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestFinishRecordedOnce(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()
	sess, err := svc.Start(ctx, StartRequest{QuizID: "chemistry-periodic-table"})
	require.NoError(t, err)

	for i := range sess.Questions {
		_, _, err = svc.Apply(ctx, sess.ID, SelectAnswer(i, 0))
		require.NoError(t, err)
		_, _, err = svc.Apply(ctx, sess.ID, Next())
		require.NoError(t, err)
	}
	_, ok, err := svc.Apply(ctx, sess.ID, Next())
	require.NoError(t, err)
	assert.False(t, ok)

	require.Len(t, rec.finished, 1)
	assert.Equal(t, 0, rec.finished[0].score)
	assert.Equal(t, 5, rec.finished[0].total)
}

// conflictingStore runs every update callback twice, the way RedisStore does
// after a WATCH conflict: the first result is thrown away.
type conflictingStore struct {
	*MemoryStore
}

func (c conflictingStore) Update(ctx context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error) {
	sess, err := c.MemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess.Clone()); err != nil {
		return nil, err
	}
	return c.MemoryStore.Update(ctx, id, fn)
}

type failingCreateStore struct {
	*MemoryStore
}

func (failingCreateStore) Create(context.Context, *Session) error {
	return errors.New("store unavailable")
}

func TestFinishRecordedOnceWhenUpdateRetries(t *testing.T) {
	rec := &fakeRecorder{}
	store := conflictingStore{MemoryStore: NewMemoryStore(time.Hour)}
	svc := NewService(topic.NewResolver(catalog.Default()), store, rec, zerolog.Nop())
	ctx := context.Background()

	sess, err := svc.Start(ctx, StartRequest{Subject: "physics", Topic: "Newton's First Law of Motion"})
	require.NoError(t, err)
	for i, answer := range []int{0, 2, 1} {
		_, ok, err := svc.Apply(ctx, sess.ID, SelectAnswer(i, answer))
		require.NoError(t, err)
		require.True(t, ok)
		_, ok, err = svc.Apply(ctx, sess.ID, Next())
		require.NoError(t, err)
		require.True(t, ok)
	}

	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.State.ShowResults)
	assert.Equal(t, []finished{{catalog.SubjectPhysics, 3, 3}}, rec.finished)
}

func TestStartedRecordedOnlyAfterCreate(t *testing.T) {
	rec := &fakeRecorder{}
	store := failingCreateStore{MemoryStore: NewMemoryStore(time.Hour)}
	svc := NewService(topic.NewResolver(catalog.Default()), store, rec, zerolog.Nop())

	_, err := svc.Start(context.Background(), StartRequest{Subject: "math", Topic: "Sets"})
	require.ErrorContains(t, err, "store unavailable")
	assert.Empty(t, rec.started)

	_, err = svc.NewSession(StartRequest{QuizID: "chemistry-periodic-table"})
	require.NoError(t, err)
	assert.Empty(t, rec.started)
}

func TestConcurrentApplyIsSerialized(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sess, err := svc.Start(ctx, StartRequest{QuizID: "physics-thermodynamics-basics"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, _ = svc.Apply(ctx, sess.ID, SelectAnswer(i, 1))
		}(i)
	}
	wg.Wait()

	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, got.State.Selected)
}

func TestCloseDestroysSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sess, err := svc.Start(ctx, StartRequest{Subject: "physics"})
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, sess.ID))
	_, err = svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Close(ctx, sess.ID), ErrSessionNotFound)
}

func TestViewHidesAnswerKeyUntilResults(t *testing.T) {
	svc, _ := newTestService(t)
	sess, err := svc.NewSession(StartRequest{Subject: "physics", Topic: "Thermodynamics"})
	require.NoError(t, err)

	v := sess.View()
	require.NotNil(t, v.Question)
	assert.Nil(t, v.Score)
	assert.Nil(t, v.Review)
	assert.True(t, v.Question.HasExplanation)
	assert.Empty(t, v.Question.Explanation)

	require.True(t, svc.Step(sess, ToggleExplanation()))
	assert.NotEmpty(t, sess.View().Question.Explanation)

	for i := range sess.Questions {
		require.True(t, svc.Step(sess, SelectAnswer(i, 2)))
		require.True(t, svc.Step(sess, Next()))
	}
	v = sess.View()
	assert.Nil(t, v.Question)
	require.NotNil(t, v.Score)
	assert.Equal(t, 2, *v.Score)
	assert.Len(t, v.Review, 3)
	assert.Equal(t, 3, v.Answered)
}
