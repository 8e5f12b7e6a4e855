package dto

type Template struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DiagramType  string `json:"diagram_type"`
	TikZCode     string `json:"tikz_code"`
	PreviewImage string `json:"preview_image,omitempty"`
}

type TemplateListResponse struct {
	Templates []Template `json:"templates"`
}
