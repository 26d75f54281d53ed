package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Extension    string `json:"extension"`
}

type AnalyzeRequest struct {
	JobTitle         string `json:"job_title" validate:"required"`
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	Result       *MatchResult `json:"result,omitempty"`
	ErrorMessage *string      `json:"error_message,omitempty"`
}

type JobListResponse struct {
	Jobs []string `json:"jobs"`
}
