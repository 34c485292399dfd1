package http

// UploadResponse is returned after a successful upload. The URL can be stored
// directly as an apartment's image_url.
type UploadResponse struct {
	FileID       string  `json:"file_id"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}
