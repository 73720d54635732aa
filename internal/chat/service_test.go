package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshansingh/EDTECHPCM/internal/config"
)

type fakeRecorder struct {
	mu       sync.Mutex
	statuses []Status
}

func (f *fakeRecorder) ChatCompleted(_ string, status Status, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
}

func (f *fakeRecorder) all() []Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Status(nil), f.statuses...)
}

// blockingProvider waits for release before answering.
type blockingProvider struct {
	release chan struct{}
}

func (b *blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	select {
	case <-b.release:
		return &Response{Text: "done", Model: "blocking"}, nil
	case <-ctx.Done():
		return nil, &ErrProviderUnavailable{Err: ctx.Err()}
	}
}

func (b *blockingProvider) ModelID() string { return "blocking" }

func testChatConfig() config.Chat {
	return config.Chat{Provider: "mock", Timeout: 5 * time.Second, MaxTokens: 256, MaxHistory: 4}
}

func waitResult(t *testing.T, call *Call) Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	res, err := call.Wait(ctx)
	require.NoError(t, err)
	return res
}

func userMsg(text string) Message      { return Message{Role: RoleUser, Content: text} }
func assistantMsg(text string) Message { return Message{Role: RoleAssistant, Content: text} }

func TestStartSucceeds(t *testing.T) {
	provider := NewMockProvider(MockResponse{Text: "Force equals mass times acceleration."})
	rec := &fakeRecorder{}
	svc := NewService(provider, testChatConfig(), rec, zerolog.Nop())

	call, err := svc.Start(context.Background(), []Message{
		assistantMsg(Greeting),
		userMsg("What is Newton's second law?"),
	})
	require.NoError(t, err)

	res := waitResult(t, call)
	assert.Equal(t, StatusSucceeded, res.Status)
	assert.Equal(t, "Force equals mass times acceleration.", res.Message)
	assert.NoError(t, res.Err)
	assert.Equal(t, []Status{StatusSucceeded}, rec.all())

	require.Equal(t, 1, provider.CallCount())
	sent := provider.Calls[0]
	assert.Equal(t, systemPrompt, sent.System)
	assert.Equal(t, 256, sent.MaxTokens)
	// The greeting is dropped so the conversation opens with the user.
	assert.Equal(t, []Message{userMsg("What is Newton's second law?")}, sent.Messages)
}

func TestStartFailureSurfacesApology(t *testing.T) {
	upstream := errors.New("boom")
	provider := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: upstream}})
	rec := &fakeRecorder{}
	svc := NewService(provider, testChatConfig(), rec, zerolog.Nop())

	call, err := svc.Start(context.Background(), []Message{userMsg("hi")})
	require.NoError(t, err)

	res := waitResult(t, call)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, Apology, res.Message)
	assert.ErrorIs(t, res.Err, upstream)
	var rl *ErrRateLimit
	assert.ErrorAs(t, res.Err, &rl)
	assert.Equal(t, []Status{StatusFailed}, rec.all())
}

func TestCallIsPendingUntilProviderAnswers(t *testing.T) {
	provider := &blockingProvider{release: make(chan struct{})}
	svc := NewService(provider, testChatConfig(), nil, zerolog.Nop())

	call, err := svc.Start(context.Background(), []Message{userMsg("hi")})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, call.Result().Status)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	res, err := call.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusPending, res.Status)

	close(provider.release)
	<-call.Done()
	assert.Equal(t, StatusSucceeded, call.Result().Status)
	assert.Equal(t, "done", call.Result().Message)
}

func TestStartTimesOut(t *testing.T) {
	cfg := testChatConfig()
	cfg.Timeout = 10 * time.Millisecond
	svc := NewService(&blockingProvider{release: make(chan struct{})}, cfg, nil, zerolog.Nop())

	call, err := svc.Start(context.Background(), []Message{userMsg("hi")})
	require.NoError(t, err)

	res := waitResult(t, call)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, Apology, res.Message)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestStartWithoutProvider(t *testing.T) {
	svc := NewService(nil, config.Chat{Provider: ProviderNone}, nil, zerolog.Nop())
	assert.False(t, svc.Enabled())
	assert.Empty(t, svc.ModelID())

	_, err := svc.Start(context.Background(), []Message{userMsg("hi")})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestValidateHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []Message
		max     int
		want    []Message
		wantErr string
	}{
		{name: "empty", wantErr: "no messages"},
		{name: "unknown role", history: []Message{{Role: "system", Content: "x"}}, wantErr: `role "system"`},
		{name: "blank content", history: []Message{userMsg("  ")}, wantErr: "message 0 is empty"},
		{name: "ends with assistant", history: []Message{userMsg("a"), assistantMsg("b")}, wantErr: "last message must be from the user"},
		{
			name:    "trimmed to max",
			history: []Message{userMsg("1"), assistantMsg("2"), userMsg("3"), assistantMsg("4"), userMsg("5")},
			max:     3,
			want:    []Message{userMsg("3"), assistantMsg("4"), userMsg("5")},
		},
		{
			name:    "trim drops leading assistant",
			history: []Message{userMsg("1"), assistantMsg("2"), userMsg("3")},
			max:     2,
			want:    []Message{userMsg("3")},
		},
		{
			name:    "unlimited",
			history: []Message{userMsg("1"), assistantMsg("2"), userMsg("3")},
			want:    []Message{userMsg("1"), assistantMsg("2"), userMsg("3")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateHistory(tt.history, tt.max)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidHistory)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMockProviderEchoes(t *testing.T) {
	p := NewMockProvider()
	resp, err := p.Generate(context.Background(), Request{Messages: []Message{userMsg("ping")}})
	require.NoError(t, err)
	assert.Equal(t, "You said: ping", resp.Text)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), config.Chat{Provider: ProviderNone})
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewProvider(context.Background(), config.Chat{Provider: "mock"})
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	_, err = NewProvider(context.Background(), config.Chat{Provider: "openai"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewProvider(context.Background(), config.Chat{Provider: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unknown chat provider")
}
