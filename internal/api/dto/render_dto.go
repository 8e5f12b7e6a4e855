package dto

type RenderRequest struct {
	TikZCode string `json:"tikz_code" binding:"required"`
	Format   string `json:"format" binding:"omitempty,oneof=png pdf svg"`
}

type RenderResponse struct {
	ID        string `json:"id"`
	Format    string `json:"format"`
	OutputURL string `json:"output_url"`
}
