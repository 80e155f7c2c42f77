package adapthttp

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"weighttrend/internal/app"
	"weighttrend/internal/domain"
	"weighttrend/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the optional parts of a Server.
type Options struct {
	// WebDir, when set, is served as a single page app at /.
	WebDir string
	// Unit is the display unit used when a request names none.
	Unit domain.Unit
	// Metrics and Gatherer enable request instrumentation and /metrics.
	Metrics  *metrics.Manager
	Gatherer prometheus.Gatherer
	// Now overrides the clock used to derive today's date.
	Now func() time.Time
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	weight   *app.WeightService
	settings *app.SettingsService
	metrics  *app.MetricsService

	instr    *metrics.Manager
	gatherer prometheus.Gatherer
	webDir   string
	unit     domain.Unit
	now      func() time.Time
}

// New creates a Server wired to the given application services.
func New(ws *app.WeightService, ss *app.SettingsService, ms *app.MetricsService, opts Options) *Server {
	s := &Server{
		weight:   ws,
		settings: ss,
		metrics:  ms,
		instr:    opts.Metrics,
		gatherer: opts.Gatherer,
		webDir:   opts.WebDir,
		unit:     opts.Unit,
		now:      opts.Now,
	}
	if s.unit == "" {
		s.unit = domain.UnitKg
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func outsideAPI(r *http.Request, _ *mux.RouteMatch) bool {
	return r.URL.Path != "/api" && !strings.HasPrefix(r.URL.Path, "/api/")
}

func (s *Server) today() domain.Date {
	return domain.DateOf(s.now())
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	root := mux.NewRouter()

	api := root.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	api.HandleFunc("/samples", s.handleSamplesList).Methods(http.MethodGet)
	api.HandleFunc("/samples", s.handleSamplesPut).Methods(http.MethodPut)
	api.HandleFunc("/samples/recent", s.handleSamplesRecent).Methods(http.MethodGet)

	api.HandleFunc("/summary/{granularity}", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/smooth", s.handleSmooth).Methods(http.MethodGet)
	api.HandleFunc("/trend", s.handleTrend).Methods(http.MethodGet)
	api.HandleFunc("/overview", s.handleOverview).Methods(http.MethodGet)
	api.HandleFunc("/reminder.ics", s.handleReminderCalendar).Methods(http.MethodGet)

	api.HandleFunc("/settings", s.handleSettingsGet).Methods(http.MethodGet)
	api.HandleFunc("/settings", s.handleSettingsPut).Methods(http.MethodPut)

	if s.gatherer != nil {
		root.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	if s.webDir != "" {
		root.PathPrefix("/").
			MatcherFunc(outsideAPI).
			Methods(http.MethodGet, http.MethodHead).
			Handler(spaFromDisk(s.webDir))
	}

	root.Use(s.loggingMiddleware, s.recoveryMiddleware, s.requestMetricsMiddleware)
	// mux skips Use middleware for requests no route matched.
	root.NotFoundHandler = s.chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"))
	}))
	root.MethodNotAllowedHandler = s.chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	}))
	return withNoCache(root)
}

func (s *Server) chain(h http.Handler) http.Handler {
	return s.loggingMiddleware(s.recoveryMiddleware(s.requestMetricsMiddleware(h)))
}
