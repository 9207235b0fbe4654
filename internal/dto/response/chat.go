package response

// ChatResponse and ChatError are the wire shapes of the chat endpoint.
// Unlike the rest of the API it does not use the envelope format.
type ChatResponse struct {
	Response string `json:"response"`
}

type ChatError struct {
	Error string `json:"error"`
}
