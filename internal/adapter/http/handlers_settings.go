package adapthttp

import "net/http"

func (s *Server) handleSettingsGet(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSettingsPut(w http.ResponseWriter, r *http.Request) {
	current, err := s.settings.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	// Fields absent from the body keep their current values.
	body := current
	if err := parseJSON(r, &body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	saved, err := s.settings.Update(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
