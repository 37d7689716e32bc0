package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
	"github.com/gfsouza/vendas-crm/internal/usecase"
)

type UserHandler struct {
	LoginUC     *usecase.LoginUseCase
	CreateUC    *usecase.CreateUserUseCase
	LifecycleUC *usecase.UserLifecycleUseCase
	UserRepo    entity.UserRepositoryInterface
}

func NewUserHandler(
	loginUC *usecase.LoginUseCase,
	createUC *usecase.CreateUserUseCase,
	lifecycleUC *usecase.UserLifecycleUseCase,
	userRepo entity.UserRepositoryInterface,
) *UserHandler {
	return &UserHandler{
		LoginUC:     loginUC,
		CreateUC:    createUC,
		LifecycleUC: lifecycleUC,
		UserRepo:    userRepo,
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		// Login falho responde 401, não 403: ainda não há sessão.
		if usecase.ErrorCode(err) == usecase.CodeUnauthorized {
			writeErrorResponse(w, http.StatusUnauthorized, usecase.CodeUnauthorized, err.Error())
			return
		}
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	var input usecase.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), sess, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	if !sess.Capabilities().CanManageUsers {
		writeErrorResponse(w, http.StatusForbidden, usecase.CodeUnauthorized, "somente o administrador geral gerencia usuários")
		return
	}

	users, err := h.UserRepo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, usecase.CodePersistence, "falha ao listar usuários")
		return
	}

	if users == nil {
		users = []*entity.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, func(sess auth.Session, id string) error {
		return h.LifecycleUC.Deactivate(r.Context(), sess, id)
	})
}

func (h *UserHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, func(sess auth.Session, id string) error {
		return h.LifecycleUC.Reactivate(r.Context(), sess, id)
	})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, func(sess auth.Session, id string) error {
		return h.LifecycleUC.Delete(r.Context(), sess, id)
	})
}

func (h *UserHandler) lifecycle(w http.ResponseWriter, r *http.Request, fn func(auth.Session, string) error) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	if err := fn(sess, chi.URLParam(r, "id")); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
