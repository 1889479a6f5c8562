package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/phuquy-28/onboarding-chatbot/internal/chat"
	"github.com/phuquy-28/onboarding-chatbot/internal/orchestrator"
	"github.com/phuquy-28/onboarding-chatbot/internal/store"
	"github.com/phuquy-28/onboarding-chatbot/internal/tools"
)

// Server exposes the chatbot over HTTP: /api/chat runs the orchestration
// loop, /api/greeting builds the proactive welcome, /api/health is a
// liveness probe.
type Server struct {
	orc     *orchestrator.Orchestrator
	db      *store.Store
	addr    string
	timeout time.Duration
	now     func() time.Time
}

// New builds a server. timeout bounds one request including both model
// calls; pass nil for the clock to use time.Now.
func New(orc *orchestrator.Orchestrator, db *store.Store, addr string, timeout time.Duration, now func() time.Time) *Server {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if now == nil {
		now = time.Now
	}
	return &Server{orc: orc, db: db, addr: addr, timeout: timeout, now: now}
}

// Handler returns the routed handler, CORS included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/greeting", s.handleGreeting)
	mux.HandleFunc("/api/health", s.handleHealth)
	return withCORS(mux)
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		log.Println("[server] shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[server] listening on http://%s", displayAddr(s.addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

type assistantPayload struct {
	Role             string   `json:"role"`
	Content          string   `json:"content"`
	SuggestedPrompts []string `json:"suggested_prompts"`
}

type chatResponse struct {
	Success  bool              `json:"success"`
	Messages []chat.Message    `json:"messages,omitempty"`
	Response *assistantPayload `json:"response,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatResponse{Success: false, Error: "invalid request body"})
		return
	}
	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, chatResponse{Success: false, Error: "no messages provided"})
		return
	}

	turnCtx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	reply, err := s.orc.Respond(turnCtx, req.Messages)
	if err != nil {
		if errors.Is(err, orchestrator.ErrNoMessages) {
			writeJSON(w, http.StatusBadRequest, chatResponse{Success: false, Error: err.Error()})
			return
		}
		log.Printf("[server] chat request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, chatResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Success:  true,
		Messages: reply.Messages,
		Response: &assistantPayload{
			Role:             string(chat.RoleAssistant),
			Content:          reply.Answer,
			SuggestedPrompts: reply.SuggestedPrompts,
		},
	})
}

type greetingRequest struct {
	EmployeeID string `json:"employee_id"`
}

type greetingResponse struct {
	Success          bool           `json:"success"`
	Greeting         string         `json:"greeting,omitempty"`
	Employee         map[string]any `json:"employee,omitempty"`
	UrgentTasksCount int            `json:"urgent_tasks_count"`
	Error            string         `json:"error,omitempty"`
}

func (s *Server) handleGreeting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req greetingRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.EmployeeID == "" {
		req.EmployeeID = tools.DefaultEmployeeID
	}

	emp, ok := s.db.Resolve(req.EmployeeID)
	if !ok {
		writeJSON(w, http.StatusNotFound, greetingResponse{Success: false, Error: "Employee not found"})
		return
	}

	urgent := s.db.UrgentTasks(emp.EmployeeID, s.now(), tools.UrgentWindowDays)

	writeJSON(w, http.StatusOK, greetingResponse{
		Success:  true,
		Greeting: buildGreeting(emp, urgent),
		Employee: map[string]any{
			"id":   emp.EmployeeID,
			"name": emp.Name,
		},
		UrgentTasksCount: len(urgent),
	})
}

// buildGreeting composes the proactive welcome: address the new hire by
// given name and flag anything due soon. The dataset uses Vietnamese name
// order, so the given name is the last token.
func buildGreeting(emp store.Employee, urgent []store.UrgentTask) string {
	parts := strings.Fields(emp.Name)
	name := emp.Name
	if len(parts) > 0 {
		name = parts[len(parts)-1]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👋 Hi %s! I'm your FPT Software onboarding assistant.\n\n", name)

	switch {
	case len(urgent) == 1:
		t := urgent[0]
		when := "today"
		if t.DaysLeft == 1 {
			when = "tomorrow"
		} else if t.DaysLeft > 1 {
			when = fmt.Sprintf("in %d days", t.DaysLeft)
		}
		fmt.Fprintf(&b, "⚠️ I noticed **%s** is due %s. Don't forget to finish it!\n\n", t.Task.Task, when)
	case len(urgent) > 1:
		fmt.Fprintf(&b, "⚠️ You have **%d tasks** due soon. Would you like to see the details?\n\n", len(urgent))
	}

	b.WriteString("What can I help you with today?")
	return b.String()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "Employee Onboarding Chatbot API",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[server] failed to encode response: %v", err)
	}
}

// withCORS allows the browser frontend on another origin to call the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
