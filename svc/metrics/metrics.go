package metric

import "github.com/prometheus/client_golang/prometheus"

var (
	// Total questionnaire sessions started
	SessionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "advisor_sessions_started_total",
		Help: "Total questionnaire sessions created",
	})

	// Total sessions that reached the DONE state
	SessionsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "advisor_sessions_completed_total",
		Help: "Total questionnaire sessions finished",
	})

	// Total adaptive questions served to users
	QuestionsServed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "advisor_questions_served_total",
		Help: "Total questions selected and served",
	})

	// Total answers applied to belief state
	AnswersProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "advisor_answers_processed_total",
		Help: "Total answers applied to session score maps",
	})

	// Distribution of how many questions sessions needed before stopping
	SessionLength = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "advisor_session_length_questions",
		Help:    "Questions answered per finished session",
		Buckets: prometheus.LinearBuckets(1, 1, 15),
	})

	// Latency of the answer submission handler
	AnswerLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "advisor_answer_latency_seconds",
		Help:    "Latency of answer submission handling",
		Buckets: prometheus.DefBuckets,
	})
)

func Init() {
	prometheus.MustRegister(
		SessionsStarted,
		SessionsCompleted,
		QuestionsServed,
		AnswersProcessed,
		SessionLength,
		AnswerLatency,
	)
}
