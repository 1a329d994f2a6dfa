package dto

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type GeminiQuery struct {
	Prompt string `form:"prompt" binding:"required"`
}

type GeminiResponse struct {
	Text string `json:"text"`
}

type AvatarResponse struct {
	URL string `json:"url"`
}
