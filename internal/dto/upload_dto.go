package dto

// UploadedFile describes a single stored media asset returned to the client.
type UploadedFile struct {
	URL          string `json:"url"`
	Type         string `json:"type"`
	OriginalName string `json:"original_name"`
}
