package file

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptstay/apartment-booking-backend/internal/pkg/storage"
)

type memRepository struct {
	files map[string]*File
}

func newMemRepository() *memRepository {
	return &memRepository{files: make(map[string]*File)}
}

func (r *memRepository) Create(ctx context.Context, f *File) error {
	stored := *f
	r.files[f.ID] = &stored
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*File, error) {
	f, ok := r.files[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *memRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.files[id]; !ok {
		return ErrNotFound
	}
	delete(r.files, id)
	return nil
}

// makeFileHeader builds a real multipart.FileHeader the same way gin does
// when parsing a form upload.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	reader := multipart.NewReader(body, mw.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 300, 300))
	for x := 0; x < 300; x++ {
		for y := 0; y < 300; y++ {
			img.Set(x, y, color.RGBA{B: 200, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func newTestService(t *testing.T) (Service, *memRepository) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := newMemRepository()
	return NewService(repo, store), repo
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores image with thumbnail", func(t *testing.T) {
		svc, repo := newTestService(t)
		fh := makeFileHeader(t, "photo.png", "image/png", pngBytes(t))

		f, err := svc.Upload(ctx, UploadInput{FileHeader: fh, UserID: "user-1"})
		require.NoError(t, err)

		assert.NotEmpty(t, f.ID)
		assert.Equal(t, "photo.png", f.Filename)
		assert.Equal(t, "image/png", f.ContentType)
		assert.Contains(t, f.StoragePath, f.ID[:2]+"/")
		require.NotNil(t, f.ThumbnailPath)
		assert.Contains(t, *f.ThumbnailPath, "_thumb.jpg")

		_, ok := repo.files[f.ID]
		assert.True(t, ok)
	})

	t.Run("rejects non-image content type", func(t *testing.T) {
		svc, _ := newTestService(t)
		fh := makeFileHeader(t, "doc.pdf", "application/pdf", []byte("%PDF"))

		_, err := svc.Upload(ctx, UploadInput{FileHeader: fh, UserID: "user-1"})
		require.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("rejects file over the size limit", func(t *testing.T) {
		svc, _ := newTestService(t)
		fh := makeFileHeader(t, "photo.png", "image/png", pngBytes(t))

		_, err := svc.Upload(ctx, UploadInput{FileHeader: fh, UserID: "user-1", MaxSizeBytes: 10})
		require.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("undecodable image uploads without thumbnail", func(t *testing.T) {
		svc, _ := newTestService(t)
		fh := makeFileHeader(t, "photo.png", "image/png", []byte("not really a png"))

		f, err := svc.Upload(ctx, UploadInput{FileHeader: fh, UserID: "user-1"})
		require.NoError(t, err)
		assert.Nil(t, f.ThumbnailPath)
	})
}

func TestDownloadAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	content := pngBytes(t)
	fh := makeFileHeader(t, "photo.png", "image/png", content)

	f, err := svc.Upload(ctx, UploadInput{FileHeader: fh, UserID: "user-1"})
	require.NoError(t, err)

	stream, meta, err := svc.Download(ctx, f.ID)
	require.NoError(t, err)
	defer stream.Close()

	got, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, f.ID, meta.ID)

	thumb, _, err := svc.DownloadThumbnail(ctx, f.ID)
	require.NoError(t, err)
	thumb.Close()

	require.NoError(t, svc.Delete(ctx, f.ID))

	_, _, err = svc.Download(ctx, f.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, f.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
