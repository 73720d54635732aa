package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Akshansingh/EDTECHPCM/internal/config"
)

// Apology is what users see whenever a reply could not be produced.
const Apology = "I'm sorry, I encountered an error. Please try again later."

// Greeting opens every new conversation.
const Greeting = "Hello! I'm your educational assistant. How can I help you with your studies today?"

const systemPrompt = "You are an educational assistant for students preparing for physics, chemistry and mathematics exams (CBSE and JEE Main). Explain concepts clearly and concisely, and work through problems step by step."

// Status is the observable state of a Call.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Result is a snapshot of a Call. Message always holds user-facing text
// once the call has completed; on failure it is Apology and Err says why.
type Result struct {
	Status  Status
	Message string
	Err     error
}

// Call is one in-flight request to the provider.
type Call struct {
	done   chan struct{}
	result Result
}

// Done is closed once the call has completed.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Result returns the outcome without blocking; pending while in flight.
func (c *Call) Result() Result {
	select {
	case <-c.done:
		return c.result
	default:
		return Result{Status: StatusPending}
	}
}

// Wait blocks until the call completes or ctx is done.
func (c *Call) Wait(ctx context.Context) (Result, error) {
	select {
	case <-c.done:
		return c.result, nil
	case <-ctx.Done():
		return Result{Status: StatusPending}, ctx.Err()
	}
}

// Recorder receives chat call observations.
type Recorder interface {
	ChatCompleted(provider string, status Status, elapsed time.Duration)
}

// Service forwards conversations to the configured provider.
type Service struct {
	provider     Provider
	providerName string
	timeout      time.Duration
	maxTokens    int
	maxHistory   int
	recorder     Recorder
	logger       zerolog.Logger
}

// NewService wires the chat service. provider may be nil (chat disabled)
// and recorder may be nil.
func NewService(provider Provider, cfg config.Chat, recorder Recorder, logger zerolog.Logger) *Service {
	return &Service{
		provider:     provider,
		providerName: cfg.Provider,
		timeout:      cfg.Timeout,
		maxTokens:    cfg.MaxTokens,
		maxHistory:   cfg.MaxHistory,
		recorder:     recorder,
		logger:       logger.With().Str("component", "chat_service").Logger(),
	}
}

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool {
	return s.provider != nil
}

// ProviderName is the configured provider key.
func (s *Service) ProviderName() string {
	return s.providerName
}

// ModelID is the upstream model, empty when disabled.
func (s *Service) ModelID() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.ModelID()
}

// Start validates history and dispatches it to the provider in the
// background. Validation problems are returned immediately; everything
// after dispatch surfaces through the Call.
func (s *Service) Start(ctx context.Context, history []Message) (*Call, error) {
	if s.provider == nil {
		return nil, ErrNotConfigured
	}
	msgs, err := ValidateHistory(history, s.maxHistory)
	if err != nil {
		return nil, err
	}

	call := &Call{done: make(chan struct{})}
	go s.run(ctx, call, msgs)
	return call, nil
}

func (s *Service) run(ctx context.Context, call *Call, msgs []Message) {
	defer close(call.done)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.provider.Generate(ctx, Request{
		System:    systemPrompt,
		Messages:  msgs,
		MaxTokens: s.maxTokens,
	})
	elapsed := time.Since(start)

	if err != nil {
		call.result = Result{Status: StatusFailed, Message: Apology, Err: err}
		s.logger.Warn().Err(err).Dur("elapsed", elapsed).Str("model", s.provider.ModelID()).Msg("chat request failed")
	} else {
		call.result = Result{Status: StatusSucceeded, Message: resp.Text}
		s.logger.Debug().
			Dur("elapsed", elapsed).
			Str("model", resp.Model).
			Int("input_tokens", resp.Usage.InputTokens).
			Int("output_tokens", resp.Usage.OutputTokens).
			Msg("chat request completed")
	}
	if s.recorder != nil {
		s.recorder.ChatCompleted(s.providerName, call.result.Status, elapsed)
	}
}

// ValidateHistory checks a conversation and trims it to the max most recent
// messages. The last message must come from the user; blank messages and
// unknown roles are rejected. A leading assistant greeting is allowed.
func ValidateHistory(history []Message, max int) ([]Message, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: no messages", ErrInvalidHistory)
	}
	for i, m := range history {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			return nil, fmt.Errorf("%w: message %d has role %q", ErrInvalidHistory, i, m.Role)
		}
		if strings.TrimSpace(m.Content) == "" {
			return nil, fmt.Errorf("%w: message %d is empty", ErrInvalidHistory, i)
		}
	}
	if history[len(history)-1].Role != RoleUser {
		return nil, fmt.Errorf("%w: last message must be from the user", ErrInvalidHistory)
	}

	if max > 0 && len(history) > max {
		history = history[len(history)-max:]
	}
	// Providers expect the conversation to open with a user turn.
	for len(history) > 0 && history[0].Role == RoleAssistant {
		history = history[1:]
	}
	return append([]Message(nil), history...), nil
}
