package topic

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
	httperrors "github.com/Akshansingh/EDTECHPCM/pkg/http/errors"
)

// HTTPHandler exposes the catalog and resolver over REST.
type HTTPHandler struct {
	resolver *Resolver
	logger   zerolog.Logger
}

// NewHTTPHandler constructs the topic HTTP handler.
func NewHTTPHandler(resolver *Resolver, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		resolver: resolver,
		logger:   logger.With().Str("component", "topic_http").Logger(),
	}
}

// Register mounts the topic routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/topics", h.ListTopics)
	mux.HandleFunc("GET /v1/subjects/{subject}/documents", h.ListDocuments)
	mux.HandleFunc("GET /v1/quizzes", h.ListQuizzes)
}

// ListTopics handles GET /v1/topics
func (h *HTTPHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	c := h.resolver.Catalog()
	coverage := make(map[catalog.Subject][]string, len(catalog.Subjects))
	for _, subject := range catalog.Subjects {
		coverage[subject] = c.Questions.Table.Topics(subject)
	}
	httperrors.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"topics":   c.MasterTopics,
		"coverage": coverage,
	})
}

// ListDocuments handles GET /v1/subjects/{subject}/documents?topic=
func (h *HTTPHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	subject, ok := h.parseSubject(w, r.PathValue("subject"))
	if !ok {
		return
	}
	topic := r.URL.Query().Get("topic")
	res := h.resolver.Documents(subject, topic)

	h.logger.Debug().
		Str("subject", string(subject)).
		Str("topic", topic).
		Str("outcome", string(res.Outcome)).
		Msg("documents resolved")

	httperrors.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"subject":       subject,
		"topic":         topic,
		"matched_topic": res.MatchedTopic,
		"outcome":       res.Outcome,
		"documents":     res.Items,
	})
}

// ListQuizzes handles GET /v1/quizzes?subject=&topic=
func (h *HTTPHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	subject, ok := h.parseSubject(w, r.URL.Query().Get("subject"))
	if !ok {
		return
	}
	topic := r.URL.Query().Get("topic")
	matched := MatchQuizzes(h.resolver.Catalog().Quizzes, subject, topic)

	summaries := make([]QuizSummary, 0, len(matched))
	for _, q := range matched {
		summaries = append(summaries, Summarize(q))
	}
	httperrors.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"subject": subject,
		"topic":   topic,
		"quizzes": summaries,
	})
}

func (h *HTTPHandler) parseSubject(w http.ResponseWriter, raw string) (catalog.Subject, bool) {
	if raw == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "subject is required", "subject")
		return "", false
	}
	subject, err := catalog.ParseSubject(raw)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownSubject) {
			httperrors.RespondValidationError(w, httperrors.ErrCodeUnknownSubject, err.Error(), "subject")
			return "", false
		}
		httperrors.RespondInternalError(w, "failed to parse subject")
		return "", false
	}
	return subject, true
}
