package dto

// ── assistant gateway DTOs ──

// ChatRequest forwards a user message to the upstream assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse relays the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}
