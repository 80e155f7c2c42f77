package adapthttp

import (
	"net/http"

	"weighttrend/internal/analytics"
	"weighttrend/internal/app"

	"github.com/gorilla/mux"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	g, err := analytics.ParseGranularity(mux.Vars(r)["granularity"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	fallback := app.WeeklyRows
	if g == analytics.Month {
		fallback = app.MonthlyRows
	}

	cmp, err := s.metrics.Summary(r.Context(), g, intQuery(r, "limit", fallback))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleSmooth(w http.ResponseWriter, r *http.Request) {
	smoothed, err := s.metrics.Smooth(r.Context(), intQuery(r, "window", 0))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, smoothed)
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	goal, err := floatQuery(r, "goal")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	trend, err := s.metrics.Trend(r.Context(), goal, s.today())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.metrics.Overview(r.Context(), s.today())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}

func (s *Server) handleReminderCalendar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="weigh-in-reminder.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(app.ReminderCalendar(s.today()))
}
