package server

import (
	"errors"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	ai "benefits-advisor-core/ai"
	db "benefits-advisor-core/db"
	"benefits-advisor-core/svc"
	metric "benefits-advisor-core/svc/metrics"
	"benefits-advisor-core/svc/models"
)

type Server struct {
	qsvc     *svc.QuestionnaireService
	kvStore  *db.KeyValueStore
	aih      *ai.AIHelper
	validate *validator.Validate

	// maxRecommendations truncates recommendation payloads at the API edge;
	// the engine always synthesizes the full catalog.
	maxRecommendations int
}

// Options tunes the server beyond its defaults.
type Options struct {
	// Bank overrides the built-in question bank.
	Bank []*models.QuestionSpec
	// OpenAIKey enables best-effort LLM rationale refinement.
	OpenAIKey string
	// MaxRecommendations caps recommendation payload length; 0 means 15.
	MaxRecommendations int
}

func NewServer(kvStore *db.KeyValueStore, opts Options) *Server {
	maxRecs := opts.MaxRecommendations
	if maxRecs <= 0 {
		maxRecs = 15
	}
	var aih *ai.AIHelper
	if opts.OpenAIKey != "" {
		aih = ai.NewAIHelper(opts.OpenAIKey)
	}
	return &Server{
		qsvc:               svc.NewQuestionnaireService(kvStore, opts.Bank),
		kvStore:            kvStore,
		aih:                aih,
		validate:           validator.New(),
		maxRecommendations: maxRecs,
	}
}

type (
	StartSessionRequest struct {
		Profile models.UserProfile    `json:"profile" validate:"required"`
		Config  *models.SessionConfig `json:"config,omitempty"`
	}

	StartSessionResponse struct {
		SessionID      string                     `json:"session_id"`
		Scores         map[string]float64         `json:"scores"`
		Question       *models.QuestionSpec       `json:"question,omitempty"`
		Selection      *models.SelectionRationale `json:"selection,omitempty"`
		Progress       models.Progress            `json:"progress"`
		RiskAssessment models.RiskAssessment      `json:"risk_assessment"`
	}

	AnswerRequest struct {
		SessionID  string `json:"session_id" validate:"required"`
		QuestionID string `json:"question_id" validate:"required"`
		Choice     string `json:"choice" validate:"required,oneof=A B"`
	}

	AnswerResponse struct {
		Answer       models.AnsweredQuestion    `json:"answer"`
		Done         bool                       `json:"done"`
		NextQuestion *models.QuestionSpec       `json:"next_question,omitempty"`
		Selection    *models.SelectionRationale `json:"selection,omitempty"`
		Progress     models.Progress            `json:"progress"`
	}

	RecommendationsResponse struct {
		SessionID       string                  `json:"session_id"`
		Recommendations []models.Recommendation `json:"recommendations"`
		RiskAssessment  models.RiskAssessment   `json:"risk_assessment"`
		Summary         string                  `json:"summary,omitempty"`
		Progress        models.Progress         `json:"progress"`
	}

	ResponseError struct {
		Message string `json:"message"`
	}
)

func (s *Server) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := s.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	created, err := s.qsvc.CreateSession(&models.CreateSessionInput{Profile: req.Profile, Config: req.Config})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	metric.SessionsStarted.Inc()

	next, err := s.qsvc.NextQuestion(created.Session.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if next.Question != nil {
		metric.QuestionsServed.Inc()
	}

	return c.JSON(http.StatusCreated, StartSessionResponse{
		SessionID:      created.Session.ID,
		Scores:         created.Session.Scores.ToSlugMap(),
		Question:       next.Question,
		Selection:      next.Selection,
		Progress:       next.Progress,
		RiskAssessment: svc.AssessRisk(&created.Session.Profile),
	})
}

func (s *Server) NextQuestion(c echo.Context) error {
	out, err := s.qsvc.NextQuestion(c.Param("id"))
	if err != nil {
		return s.errorResponse(c, err)
	}
	if out.Question != nil {
		metric.QuestionsServed.Inc()
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) SubmitAnswer(c echo.Context) error {
	start := time.Now()

	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := s.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	out, err := s.qsvc.SubmitAnswer(req.SessionID, &models.SubmitAnswerInput{
		QuestionID: req.QuestionID,
		Side:       models.ChoiceSide(req.Choice),
	})
	if err != nil {
		return s.errorResponse(c, err)
	}
	metric.AnswersProcessed.Inc()
	metric.AnswerLatency.Observe(time.Since(start).Seconds())

	resp := AnswerResponse{
		Answer:   out.Answer,
		Done:     out.Done,
		Progress: out.Progress,
	}
	if out.Done {
		metric.SessionsCompleted.Inc()
		metric.SessionLength.Observe(float64(out.Progress.QuestionsAnswered))
	} else {
		next, err := s.qsvc.NextQuestion(req.SessionID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
		resp.NextQuestion = next.Question
		resp.Selection = next.Selection
		resp.Done = next.Question == nil
		resp.Progress = next.Progress
		if next.Question != nil {
			metric.QuestionsServed.Inc()
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) Recommendations(c echo.Context) error {
	sessionID := c.Param("id")
	session, err := s.qsvc.GetSession(sessionID)
	if err != nil {
		return s.errorResponse(c, err)
	}

	out, err := s.qsvc.Finalize(sessionID)
	if err != nil {
		return s.errorResponse(c, err)
	}

	recs := out.Recommendations
	if len(recs) > s.maxRecommendations {
		recs = recs[:s.maxRecommendations]
	}

	resp := RecommendationsResponse{
		SessionID:       sessionID,
		Recommendations: recs,
		RiskAssessment:  svc.AssessRisk(&session.Profile),
		Progress:        out.Progress,
	}

	// Refinement is best effort; the templated rationales stand on their own.
	if s.aih != nil {
		ctx := c.Request().Context()
		if summary, err := s.aih.SummarizeRecommendations(ctx, session.Profile, recs); err == nil {
			resp.Summary = summary
		} else {
			log.Printf("rationale summary failed for %s: %v", sessionID, err)
		}
		for i := range resp.Recommendations {
			if i >= 3 {
				break
			}
			refined, err := s.aih.RefineRationale(ctx, session.Profile, resp.Recommendations[i])
			if err != nil {
				log.Printf("rationale refinement failed for %s/%s: %v", sessionID, resp.Recommendations[i].Benefit, err)
				break
			}
			resp.Recommendations[i].Rationale = refined
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) DeleteSession(c echo.Context) error {
	if err := s.qsvc.DeleteSession(c.Param("id")); err != nil {
		return s.errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, db.ErrOwnerNotFound), errors.Is(err, db.ErrNotFound), errors.Is(err, svc.ErrUnknownQuestion):
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	case errors.Is(err, svc.ErrSessionDone), errors.Is(err, svc.ErrQuestionAlreadyAnswered):
		return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
	case errors.Is(err, svc.ErrInvalidChoice), errors.Is(err, svc.ErrQuestionNotApplicable):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
}

// NewEcho builds the routed echo instance for this server.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())

	api := e.Group("/api")
	api.POST("/start", s.StartSession)
	api.POST("/answer", s.SubmitAnswer)
	api.GET("/sessions/:id/next", s.NextQuestion)
	api.GET("/sessions/:id/recommendations", s.Recommendations)
	api.DELETE("/sessions/:id", s.DeleteSession)

	e.GET("/healthz", s.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// RunServer starts the HTTP server on the given port. An empty port picks a
// free one, which integration tests rely on. The returned WaitGroup is done
// once the serve loop exits.
func RunServer(kvStore *db.KeyValueStore, opts Options, port string) (*http.Server, *sync.WaitGroup, string) {
	s := NewServer(kvStore, opts)
	e := s.NewEcho()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:3001", "http://localhost:8081", "http://localhost"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Origin"},
		ExposedHeaders:   []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
	})

	var listener net.Listener
	var err error

	if port == "" {
		listener, err = net.Listen("tcp", ":0")
		if err != nil {
			log.Fatalf("Failed to listen: %v", err)
		}
		port = strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)
	} else {
		listener, err = net.Listen("tcp", ":"+port)
		if err != nil {
			log.Fatalf("Failed to listen on port %s: %v", port, err)
		}
	}

	srv := &http.Server{
		Handler: corsHandler.Handler(e),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Server is running on port %s", port)
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			log.Fatalf("Serve(): %v", err)
		}
	}()

	return srv, &wg, port
}
