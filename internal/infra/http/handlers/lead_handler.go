package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
)

type LeadHandler struct {
	leadRepo    entity.LeadRepositoryInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(leadRepo entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{
		leadRepo:    leadRepo,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min por IP
	}
}

type CaptureLeadRequest struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city,omitempty"`
}

type CaptureLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CaptureLead registra um contato captado na rua. A deduplicação é por
// telefone: captar o mesmo contato de novo só atualiza os dados.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Message: "muitas requisições, tente novamente em instantes",
		})
		return
	}

	var req CaptureLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "JSON inválido",
		})
		return
	}

	if req.Phone == "" {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "telefone é obrigatório",
		})
		return
	}

	lead := &entity.Lead{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		District: req.District,
		City:     req.City,
		Status:   "NOVO",
	}
	if sess, ok := auth.SessionFrom(ctx); ok {
		lead.CapturedBy = sess.UserID
	}

	if err := h.leadRepo.Upsert(ctx, lead); err != nil {
		writeJSON(w, http.StatusInternalServerError, CaptureLeadResponse{
			Success: false,
			Message: "falha ao registrar o contato",
		})
		return
	}

	writeJSON(w, http.StatusOK, CaptureLeadResponse{Success: true})
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SessionFrom(r.Context()); !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	leads, err := h.leadRepo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "PERSISTENCE_ERROR", "falha ao listar contatos")
		return
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
