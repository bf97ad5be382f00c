package dto

type FirstAidRequest struct {
	Prompt string  `json:"prompt"`
	UserID *string `json:"userId"`
}

type FirstAidResponse struct {
	ID       string `json:"id"`
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}
