package models

// PastDocument is the metadata of an uploaded document.
type PastDocument struct {
	ID          int64  `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	CreatedAt   string `json:"createdAt"`
}

// CreatePastDocumentRequest registers document metadata without content.
type CreatePastDocumentRequest struct {
	FileName string `json:"fileName"`
}

// Validate checks required fields.
func (r *CreatePastDocumentRequest) Validate() error {
	if r.FileName == "" {
		return missingField("fileName")
	}
	return nil
}
