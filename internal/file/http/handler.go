package http

import (
	"io"
	"net/http"

	"github.com/aptstay/apartment-booking-backend/internal/auth"
	"github.com/aptstay/apartment-booking-backend/internal/file"
	"github.com/aptstay/apartment-booking-backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	fileService file.Service
	maxBytes    int64
}

func NewHandler(fileService file.Service, maxBytes int64) *Handler {
	return &Handler{
		fileService: fileService,
		maxBytes:    maxBytes,
	}
}

// Upload handles POST /files (admin only, multipart field "file").
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := h.fileService.Upload(c.Request.Context(), file.UploadInput{
		FileHeader:   fileHeader,
		UserID:       auth.GetUserID(c),
		MaxSizeBytes: h.maxBytes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	var thumbURL *string
	if f.ThumbnailPath != nil {
		t := file.ThumbnailURL(f.ID)
		thumbURL = &t
	}

	c.JSON(http.StatusCreated, UploadResponse{
		FileID:       f.ID,
		URL:          file.URL(f.ID),
		ThumbnailURL: thumbURL,
	})
}

// ServeFile serves the file content by ID.
func (h *Handler) ServeFile(c *gin.Context) {
	id := c.Param("id")

	stream, fileInfo, err := h.fileService.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", fileInfo.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+fileInfo.Filename+"\"")

	c.Status(http.StatusOK)
	// Response already started; a copy error here cannot be reported.
	_, _ = io.Copy(c.Writer, stream)
}

// ServeThumbnail serves the thumbnail image by file ID.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	id := c.Param("id")

	stream, fileInfo, err := h.fileService.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always JPEG.
	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+fileInfo.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

// Delete handles DELETE /files/:id (admin only).
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.fileService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
