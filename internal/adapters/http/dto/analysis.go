package dto

// UploadedImage describes the multipart part before its bytes are read.
type UploadedImage struct {
	FileName string `validate:"required,image_ext"`
	MimeType string `validate:"required,image_mime"`
	Size     int64  `validate:"gt=0"`
}

type AnalysisResponse struct {
	Analysis   string `json:"analysis"`
	Model      string `json:"model"`
	Style      string `json:"style"`
	DurationMs int64  `json:"duration_ms"`
}

// PageView feeds the index.html template.
type PageView struct {
	Title       string
	Header      string
	Subheader   string
	UploadLabel string
	SubmitLabel string
	Accept      string
	Reminder    string
	FileName    string
	Result      string
	HasResult   bool
	Success     string
	Error       string
	RequestID   string
}
