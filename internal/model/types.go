package model

// AnswerRequest is the input of one answer generation: the user question and
// the context text the answer must be grounded in.
type AnswerRequest struct {
	Question string `json:"question" validate:"required"`
	Context  string `json:"context" validate:"required"`
}

// AnswerResponse is returned by POST /answer.
type AnswerResponse struct {
	Answer   string `json:"answer"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
}

type ModelInfo struct {
	ID      string `json:"id"`
	OwnedBy string `json:"owned_by,omitempty"`
}
