package file

import (
	"net/http"
	"time"

	"github.com/aptstay/apartment-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(apperror.KindNotFound, http.StatusNotFound, "file not found")
	ErrNotAnImage  = apperror.New(apperror.KindBadRequest, http.StatusBadRequest, "only images are allowed")
	ErrTooLarge    = apperror.New(apperror.KindBadRequest, http.StatusBadRequest, "file exceeds the upload size limit")
	ErrNoThumbnail = apperror.New(apperror.KindNotFound, http.StatusNotFound, "thumbnail not available for this file")
)

// File is the metadata row for an uploaded blob.
type File struct {
	ID            string
	UserID        string
	Filename      string
	StoragePath   string  // internal path, never exposed
	ThumbnailPath *string // internal path, never exposed
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public URL for accessing a file by its ID.
func URL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public URL for a file's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
