package dto

type PDFExportRequest struct {
	DiagramID   string `json:"diagram_id" binding:"required"`
	IncludeCode bool   `json:"include_code"`
	Title       string `json:"title"`
}

type PDFExportResponse struct {
	PDFURL   string `json:"pdf_url"`
	Filename string `json:"filename"`
}
