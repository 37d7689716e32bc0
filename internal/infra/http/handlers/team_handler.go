package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
	"github.com/gfsouza/vendas-crm/internal/usecase"
)

type TeamHandler struct {
	TeamUC   *usecase.TeamUseCase
	TeamRepo entity.TeamRepositoryInterface
}

func NewTeamHandler(teamUC *usecase.TeamUseCase, teamRepo entity.TeamRepositoryInterface) *TeamHandler {
	return &TeamHandler{TeamUC: teamUC, TeamRepo: teamRepo}
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	team, err := h.TeamUC.Create(r.Context(), sess, body.Name)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, team)
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SessionFrom(r.Context()); !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	teams, err := h.TeamRepo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, usecase.CodePersistence, "falha ao listar equipes")
		return
	}

	if teams == nil {
		teams = []*entity.Team{}
	}
	writeJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) Rename(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if err := h.TeamUC.Rename(r.Context(), sess, chi.URLParam(r, "id"), body.Name); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TeamHandler) AssignSupervisor(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	var body struct {
		SupervisorID string `json:"supervisor_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if err := h.TeamUC.AssignSupervisor(r.Context(), sess, chi.URLParam(r, "id"), body.SupervisorID); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
