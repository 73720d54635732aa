package topic

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
)

// Outcome names the resolution step that produced a result.
type Outcome string

const (
	OutcomeExact    Outcome = "exact"
	OutcomeFuzzy    Outcome = "fuzzy"
	OutcomeFallback Outcome = "fallback"
)

// Kind distinguishes the two catalog sections the resolver serves.
type Kind string

const (
	KindQuestions Kind = "questions"
	KindDocuments Kind = "documents"
)

// Resolution is the outcome of resolving a free-text topic. Items is never
// empty for a validated catalog.
type Resolution[T any] struct {
	Items        []T     `json:"items"`
	MatchedTopic string  `json:"matched_topic,omitempty"`
	Outcome      Outcome `json:"outcome"`
}

// Observer is notified after every resolution.
type Observer interface {
	ObserveResolution(kind Kind, subject catalog.Subject, outcome Outcome)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithObserver attaches an observer, typically a metrics recorder.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		r.observer = o
	}
}

// Resolver maps (subject, topic) to catalog content: exact key, then the
// first similar master topic with content, then the subject fallback.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	catalog  *catalog.Catalog
	folded   []string
	observer Observer
}

// NewResolver builds a resolver over a validated catalog.
func NewResolver(c *catalog.Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog: c,
		folded:  make([]string, len(c.MasterTopics)),
	}
	for i, label := range c.MasterTopics {
		r.folded[i] = fold(label)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog exposes the underlying catalog.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.catalog
}

// Questions resolves the question list for a topic.
func (r *Resolver) Questions(subject catalog.Subject, topic string) Resolution[catalog.Question] {
	res := resolve(r, r.catalog.Questions, subject, topic)
	r.observe(KindQuestions, subject, res.Outcome)
	return res
}

// Documents resolves the previous-year papers for a topic.
func (r *Resolver) Documents(subject catalog.Subject, topic string) Resolution[catalog.Document] {
	res := resolve(r, r.catalog.Documents, subject, topic)
	r.observe(KindDocuments, subject, res.Outcome)
	return res
}

// SimilarTopics returns the master labels that contain topic or are
// contained by it, ignoring case, in master-list order. An empty topic is
// similar to every label.
func (r *Resolver) SimilarTopics(topic string) []string {
	needle := fold(topic)
	var similar []string
	for i, label := range r.catalog.MasterTopics {
		if similarFolded(r.folded[i], needle) {
			similar = append(similar, label)
		}
	}
	return similar
}

func resolve[T any](r *Resolver, section catalog.Section[T], subject catalog.Subject, topic string) Resolution[T] {
	if items, ok := section.Table.Get(subject, topic); ok {
		return Resolution[T]{Items: items, MatchedTopic: topic, Outcome: OutcomeExact}
	}

	needle := fold(topic)
	for i, label := range r.catalog.MasterTopics {
		if !similarFolded(r.folded[i], needle) {
			continue
		}
		if items, ok := section.Table.Get(subject, label); ok {
			return Resolution[T]{Items: items, MatchedTopic: label, Outcome: OutcomeFuzzy}
		}
	}

	return Resolution[T]{Items: section.FallbackFor(subject), Outcome: OutcomeFallback}
}

func (r *Resolver) observe(kind Kind, subject catalog.Subject, outcome Outcome) {
	if r.observer != nil {
		r.observer.ObserveResolution(kind, subject, outcome)
	}
}

func similarFolded(label, needle string) bool {
	return strings.Contains(label, needle) || strings.Contains(needle, label)
}

// fold applies full Unicode case folding. Casers keep internal state, so a
// fresh one is used per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
