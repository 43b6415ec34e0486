package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/napolitain/ageofwar/internal/api"
	"github.com/napolitain/ageofwar/internal/converter"
	"github.com/napolitain/ageofwar/internal/muster"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
)

// maxBodyBytes bounds a battle request body
const maxBodyBytes = 64 << 10

type handler struct {
	solver *arrangement.Solver
	logger *zap.Logger
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) advantages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, converter.AdvantagesToAPI())
}

func (h *handler) battle(w http.ResponseWriter, r *http.Request) {
	var req api.BattleRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	youArmy, enemyArmy, err := converter.RequestToArmies(&req)
	if err != nil {
		writeSideError(w, err)
		return
	}

	you, err := muster.Muster(youArmy)
	if err != nil {
		writeSideError(w, &converter.SideError{Side: converter.SideYou, Err: err})
		return
	}
	enemy, err := muster.Muster(enemyArmy)
	if err != nil {
		writeSideError(w, &converter.SideError{Side: converter.SideEnemy, Err: err})
		return
	}

	sol, found := h.solver.FindWinningArrangement(you, enemy)
	h.logger.Info("battle solved",
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.Stringer("you", you),
		zap.Stringer("enemy", enemy),
		zap.Bool("found", found))

	writeJSON(w, http.StatusOK, converter.SolutionToResponse(you, enemy, sol))
}

func writeSideError(w http.ResponseWriter, err error) {
	resp := api.ErrorResponse{Error: err.Error()}
	var sideErr *converter.SideError
	if errors.As(err, &sideErr) {
		resp.Side = sideErr.Side
		resp.Error = sideErr.Err.Error()
	}
	writeJSON(w, http.StatusBadRequest, resp)
}

// writeJSON marshals v as JSON and writes it with the given status code.
// If marshaling fails, it falls back to a plain-text 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
