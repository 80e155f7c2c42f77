package adapthttp

import (
	"context"
	"errors"
	"net/http"

	"weighttrend/internal/domain"

	log "github.com/sirupsen/logrus"
)

const defaultRecentLimit = 10

func (s *Server) handleSamplesList(w http.ResponseWriter, r *http.Request) {
	unit, err := s.unitQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	series, err := s.weight.Snapshot(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": unit, "items": series.InUnit(unit)})
}

func (s *Server) handleSamplesRecent(w http.ResponseWriter, r *http.Request) {
	unit, err := s.unitQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	limit := intQuery(r, "limit", defaultRecentLimit)
	items, err := s.weight.ListRecent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": unit, "items": items.InUnit(unit)})
}

func (s *Server) handleSamplesPut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date   string  `json:"date"`
		Weight float64 `json:"weight"`
		Unit   string  `json:"unit"`
	}
	if err := parseJSON(r, &body); err != nil {
		s.rejectSample(w, r, err)
		return
	}

	unit, err := domain.ParseUnit(body.Unit)
	if err != nil {
		s.rejectSample(w, r, err)
		return
	}
	day := s.today()
	if body.Date != "" {
		if day, err = domain.ParseDate(body.Date); err != nil {
			s.rejectSample(w, r, err)
			return
		}
	}

	sample, err := s.weight.RecordWeight(r.Context(), day, domain.ConvertWeight(body.Weight, unit, domain.UnitKg))
	if err != nil {
		s.rejectSample(w, r, err)
		return
	}
	s.observeSeries(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"sample": sample})
}

func (s *Server) rejectSample(w http.ResponseWriter, r *http.Request, err error) {
	if s.instr != nil && errors.Is(err, domain.ErrInvalidInput) {
		s.instr.CounterSamplesRejected.Inc()
	}
	writeServiceError(w, r, err)
}

// observeSeries refreshes the series gauges after a write.
func (s *Server) observeSeries(ctx context.Context) {
	if s.instr == nil {
		return
	}
	s.instr.CounterSamplesRecorded.Inc()

	series, err := s.weight.Snapshot(ctx)
	if err != nil {
		log.Warnf("refresh series gauges: %v", err)
		return
	}
	s.instr.GaugeSamples.Set(float64(len(series)))
	if last, ok := series.Last(); ok {
		s.instr.GaugeCurrentWeight.Set(last.Weight)
	}
}
