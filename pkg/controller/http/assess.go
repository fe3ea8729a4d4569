package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/usecase"
	"github.com/secmon-lab/themis/pkg/utils/errutil"
	"github.com/secmon-lab/themis/pkg/utils/safe"
)

type healthResponse struct {
	Status string `json:"status"`
}

// healthHandler reports service liveness
func healthHandler(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(healthResponse{Status: "ok"})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal health response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

// assessHandler runs one feature submission through the decision engine.
// The engine rejects invalid submissions with a field-level message; those
// surface as 400 because the engine itself cannot fail on valid input.
func assessHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.FeatureInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode assessment request"), http.StatusBadRequest)
			return
		}

		result, err := uc.Assess(r.Context(), &input)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		// The ID is assigned at the boundary so the engine output stays
		// deterministic for identical inputs.
		result.ID = model.NewAssessmentID()

		data, err := json.Marshal(result)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal assessment result"), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		safe.Write(r.Context(), w, data)
	}
}
