package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"labour-market/internal/data/entity"
	"labour-market/internal/dto/request"
	"labour-market/internal/dto/response"
	"labour-market/internal/usecase"
	"labour-market/pkg/utils"

	"go.uber.org/zap"
)

type ChatHandler struct {
	service usecase.ChatService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With(zap.String("handler", "chat")),
	}
}

// Chat handles POST /chat (customer only, JSON body). This endpoint
// answers with {response} / {error} payloads rather than redirects.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok || role != string(entity.RoleCustomer) {
		writeChatError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req request.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChatError(w, http.StatusBadRequest, "message is required")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeChatError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.service.Ask(r.Context(), req.Message)
	if err != nil {
		h.log.Error("Chat request failed", zap.Error(err))
		if strings.Contains(err.Error(), "required") {
			writeChatError(w, http.StatusBadRequest, "message is required")
			return
		}
		writeChatError(w, http.StatusBadGateway, "assistant unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response.ChatResponse{Response: reply})
}

func writeChatError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response.ChatError{Error: message})
}
