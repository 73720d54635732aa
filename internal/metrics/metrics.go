package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
	"github.com/Akshansingh/EDTECHPCM/internal/chat"
	"github.com/Akshansingh/EDTECHPCM/internal/topic"
)

const namespace = "edtech"

// Recorder exports resolver, session and chat activity as Prometheus
// collectors. It satisfies topic.Observer, quiz.Recorder and chat.Recorder.
type Recorder struct {
	resolutions      *prometheus.CounterVec
	sessionsStarted  *prometheus.CounterVec
	sessionsFinished *prometheus.CounterVec
	scoreRatio       *prometheus.HistogramVec
	chatRequests     *prometheus.CounterVec
	chatLatency      *prometheus.HistogramVec
}

// NewRecorder registers the collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topic",
			Name:      "resolutions_total",
			Help:      "Topic resolutions by content kind, subject and outcome.",
		}, []string{"kind", "subject", "outcome"}),
		sessionsStarted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "sessions_started_total",
			Help:      "Quiz sessions started by subject and question source.",
		}, []string{"subject", "source"}),
		sessionsFinished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "sessions_finished_total",
			Help:      "Quiz sessions that reached the results view.",
		}, []string{"subject", "perfect"}),
		scoreRatio: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "score_ratio",
			Help:      "Fraction of questions answered correctly per finished session.",
			Buckets:   []float64{0, 0.2, 0.4, 0.6, 0.8, 1},
		}, []string{"subject"}),
		chatRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Chat proxy calls by provider and final status.",
		}, []string{"provider", "status"}),
		chatLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "request_duration_seconds",
			Help:      "Time spent waiting for the chat provider.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
		}, []string{"provider"}),
	}
}

func (r *Recorder) ObserveResolution(kind topic.Kind, subject catalog.Subject, outcome topic.Outcome) {
	r.resolutions.WithLabelValues(string(kind), string(subject), string(outcome)).Inc()
}

func (r *Recorder) SessionStarted(subject catalog.Subject, source string) {
	r.sessionsStarted.WithLabelValues(string(subject), source).Inc()
}

func (r *Recorder) SessionFinished(subject catalog.Subject, score, total int) {
	r.sessionsFinished.WithLabelValues(string(subject), strconv.FormatBool(total > 0 && score == total)).Inc()
	if total > 0 {
		r.scoreRatio.WithLabelValues(string(subject)).Observe(float64(score) / float64(total))
	}
}

func (r *Recorder) ChatCompleted(provider string, status chat.Status, elapsed time.Duration) {
	r.chatRequests.WithLabelValues(provider, string(status)).Inc()
	r.chatLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}
