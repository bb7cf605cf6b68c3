// Package server exposes the analytics engine and post store over HTTP for
// the dashboard frontend.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"postpulse/internal/analytics"
	"postpulse/internal/jobs"
	"postpulse/internal/metrics"
	"postpulse/internal/model"
	"postpulse/internal/store/postdb"
	"postpulse/internal/util"
)

// Server wires the engine, store, and cached snapshots into HTTP routes.
type Server struct {
	db        *postdb.DB
	engine    *analytics.Engine
	snapshots *jobs.SnapshotService
	limiter   *rate.Limiter
	router    *mux.Router
	// now is injected for deterministic handler tests.
	now func() time.Time
}

// New builds a server with rate limiting at rps/burst.
func New(db *postdb.DB, engine *analytics.Engine, snapshots *jobs.SnapshotService, rps float64, burst int) *Server {
	s := &Server{
		db:        db,
		engine:    engine,
		snapshots: snapshots,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		now:       func() time.Time { return time.Now().UTC() },
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Use(s.limit, s.instrument)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/recommendation", s.handleRecommendation).Methods(http.MethodGet)
	api.HandleFunc("/hashtags", s.handleHashtags).Methods(http.MethodGet)
	api.HandleFunc("/suggestions", s.handleSuggestions).Methods(http.MethodPost)
	api.HandleFunc("/posts", s.handleCreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts", s.handleListPosts).Methods(http.MethodGet)
	api.HandleFunc("/hashtag-sets", s.handleCreateHashtagSet).Methods(http.MethodPost)
	api.HandleFunc("/hashtag-sets", s.handleListHashtagSets).Methods(http.MethodGet)
	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)

	s.router = r
}

// Router returns the HTTP handler, mostly for tests.
func (s *Server) Router() http.Handler { return s.router }

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	logrus.WithField("addr", addr).Info("api server listening")
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"route":    route,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("request handled")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	platform := model.PlatformID(r.URL.Query().Get("platform"))
	if platform == "" {
		writeError(w, http.StatusBadRequest, "missing platform parameter")
		return
	}
	posts, err := s.db.LoadPosts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "loading posts failed")
		return
	}
	start := time.Now()
	rec := s.engine.AnalyzeTimeSlots(posts, platform, s.now())
	metrics.ObserveAnalysis("timeslots", start)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleHashtags(w http.ResponseWriter, r *http.Request) {
	posts, err := s.db.LoadPosts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "loading posts failed")
		return
	}
	start := time.Now()
	report := s.engine.AnalyzeHashtags(posts, s.now())
	metrics.ObserveAnalysis("hashtags", start)
	writeJSON(w, http.StatusOK, report)
}

type suggestionRequest struct {
	Content  string           `json:"content"`
	Platform model.PlatformID `json:"platform"`
	Existing []string         `json:"existing"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start := time.Now()
	suggestions := s.engine.SuggestHashtags(req.Content, req.Platform, req.Existing)
	metrics.ObserveAnalysis("suggestions", start)
	writeJSON(w, http.StatusOK, suggestions)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var p model.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(p.Platforms) == 0 {
		writeError(w, http.StatusBadRequest, "post must target at least one platform")
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.ScheduledTime.IsZero() {
		p.ScheduledTime = s.now()
	}
	if err := s.db.PutPost(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "storing post failed")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.db.LoadPosts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "loading posts failed")
		return
	}
	if posts == nil {
		posts = []model.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleCreateHashtagSet(w http.ResponseWriter, r *http.Request) {
	var set model.HashtagSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	set.Name = util.NormalizeWhitespace(set.Name)
	if set.Name == "" {
		writeError(w, http.StatusBadRequest, "hashtag set needs a name")
		return
	}
	if set.ID == "" {
		set.ID = uuid.NewString()
	}
	if err := s.db.PutHashtagSet(r.Context(), set); err != nil {
		writeError(w, http.StatusInternalServerError, "storing hashtag set failed")
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

// handleListHashtagSets returns every curated set re-scored against the
// current hashtag statistics.
func (s *Server) handleListHashtagSets(w http.ResponseWriter, r *http.Request) {
	sets, err := s.db.ListHashtagSets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "loading hashtag sets failed")
		return
	}
	posts, err := s.db.LoadPosts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "loading posts failed")
		return
	}
	report := s.engine.AnalyzeHashtags(posts, s.now())
	scored := make([]model.HashtagSet, 0, len(sets))
	for _, set := range sets {
		scored = append(scored, s.engine.ScoreHashtagSet(set, report.All))
	}
	writeJSON(w, http.StatusOK, scored)
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	summary, ok := s.snapshots.Current()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no snapshot available yet")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
