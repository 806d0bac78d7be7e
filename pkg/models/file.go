package models

// StoredFile describes a persisted upload.
// StoredName is generated by the upload store and is never the
// client-supplied name verbatim; OriginalName is kept for display only.
type StoredFile struct {
	StoredName   string `json:"storedName"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
}
