package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/couchcryptid/cave-coords-service/internal/domain"
	"github.com/couchcryptid/cave-coords-service/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

const (
	maxBodyBytes = 64 << 10
	metricSource = "api"
)

// coordinateAPI serves the stateless coordinate endpoints. Every handler is a
// pure function of the request body.
type coordinateAPI struct {
	metrics *observability.Metrics
}

type notationView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type textRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Notation *domain.Notation `json:"notation"`
	Label    string           `json:"label,omitempty"`
}

type normalizeRequest struct {
	Text     string           `json:"text"`
	Notation *domain.Notation `json:"notation"`
	Axis     *domain.Axis     `json:"axis"`
}

type normalizeResponse struct {
	Value     *float64   `json:"value"`
	Cleared   bool       `json:"cleared,omitempty"`
	Formatted *formatted `json:"formatted,omitempty"`
}

// formatted renders a normalized value back into each notation the form can
// display.
type formatted struct {
	DD  string `json:"dd"`
	DDM string `json:"ddm"`
	DMS string `json:"dms"`
}

type fieldRequest struct {
	Axis     *domain.Axis     `json:"axis"`
	Text     string           `json:"text"`
	Selected *domain.Notation `json:"selected"`
}

type fieldResponse struct {
	Notation domain.Notation `json:"notation"`
	Detected bool            `json:"detected"`
	Value    *float64        `json:"value"`
	Cleared  bool            `json:"cleared"`
	Reason   domain.Reason   `json:"reason,omitempty"`
	Message  string          `json:"message,omitempty"`
}

type failureResponse struct {
	Reason domain.Reason `json:"reason"`
	Error  string        `json:"error"`
}

func (a *coordinateAPI) listNotations(w http.ResponseWriter, _ *http.Request) {
	notations := domain.Notations()
	views := make([]notationView, len(notations))
	for i, n := range notations {
		views[i] = notationView{Key: n.Key(), Label: n.Label()}
	}
	sharedobs.WriteJSON(w, http.StatusOK, views)
}

func (a *coordinateAPI) detect(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var resp detectResponse
	if n, ok := domain.DetectNotation(req.Text); ok {
		resp.Notation = &n
		resp.Label = n.Label()
	}
	sharedobs.WriteJSON(w, http.StatusOK, resp)
}

func (a *coordinateAPI) normalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Notation == nil {
		writeError(w, http.StatusBadRequest, "notation is required")
		return
	}
	if req.Axis == nil {
		writeError(w, http.StatusBadRequest, "axis is required")
		return
	}

	v, err := domain.Normalize(req.Text, *req.Notation, *req.Axis)
	a.metrics.ObserveParse(metricSource, req.Notation.Key(), string(domain.ReasonOf(err)))

	switch {
	case err == nil:
		sharedobs.WriteJSON(w, http.StatusOK, normalizeResponse{
			Value: &v,
			Formatted: &formatted{
				DD:  domain.FormatDecimal(v),
				DDM: domain.FormatDDM(v, *req.Axis),
				DMS: domain.FormatDMS(v, *req.Axis),
			},
		})
	case errors.Is(err, domain.ErrEmpty):
		sharedobs.WriteJSON(w, http.StatusOK, normalizeResponse{Cleared: true})
	default:
		writeFailure(w, err)
	}
}

func (a *coordinateAPI) pair(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, ok := domain.ExtractPair(req.Text)
	if !ok {
		a.metrics.ObserveParse(metricSource, domain.GoogleMapsPair.Key(), string(domain.ReasonNoMatch))
		sharedobs.WriteJSON(w, http.StatusUnprocessableEntity, failureResponse{
			Reason: domain.ReasonNoMatch,
			Error:  "text is not a latitude,longitude pair",
		})
		return
	}
	a.metrics.ObserveParse(metricSource, domain.GoogleMapsPair.Key(), "")
	sharedobs.WriteJSON(w, http.StatusOK, p)
}

// field applies a single keystroke-level change to a form field: detection
// first, then normalization with the effective notation.
func (a *coordinateAPI) field(w http.ResponseWriter, r *http.Request) {
	var req fieldRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Axis == nil {
		writeError(w, http.StatusBadRequest, "axis is required")
		return
	}

	f := domain.Field{Axis: *req.Axis, Notation: domain.DecimalDegrees}
	if req.Selected != nil {
		f.Notation = *req.Selected
	}
	res := f.Input(req.Text)
	reason := domain.ReasonOf(res.Err)
	a.metrics.ObserveParse(metricSource, res.Notation.Key(), string(reason))

	sharedobs.WriteJSON(w, http.StatusOK, fieldResponse{
		Notation: res.Notation,
		Detected: res.Detected,
		Value:    res.Value,
		Cleared:  res.Cleared(),
		Reason:   reason,
		Message:  res.Message(),
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func writeFailure(w http.ResponseWriter, err error) {
	sharedobs.WriteJSON(w, http.StatusUnprocessableEntity, failureResponse{
		Reason: domain.ReasonOf(err),
		Error:  err.Error(),
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	sharedobs.WriteJSON(w, status, map[string]string{"error": msg})
}
