package dto

type ConvertRequest struct {
	ImageID     string `json:"image_id" binding:"required"`
	DiagramType string `json:"diagram_type"`
	Description string `json:"description"`
	UseTemplate string `json:"use_template"`
}

type ConvertResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	TikZCode     string `json:"tikz_code,omitempty"`
	PreviewURL   string `json:"preview_url,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
