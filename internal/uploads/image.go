package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/pkg"
)

var (
	ErrMissingFile     = errors.New("no file uploaded")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Image is an uploaded image, with its type sniffed from the content.
type Image struct {
	File        multipart.File
	Header      *multipart.FileHeader
	ContentType string
	Ext         string
}

func (img *Image) Close() error {
	return img.File.Close()
}

// ReadImage parses the multipart form and returns the image under field.
// Remaining form values stay accessible through r.FormValue.
func ReadImage(r *http.Request, field string, maxBytes int64) (*Image, error) {
	if r.ContentLength > maxBytes {
		return nil, ErrFileTooLarge
	}
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
			return nil, ErrFileTooLarge
		}
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrMissingFile
		}
		return nil, fmt.Errorf("form file: %w", err)
	}
	if header.Size > maxBytes {
		_ = file.Close()
		return nil, ErrFileTooLarge
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		_ = file.Close()
		return nil, fmt.Errorf("read file head: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := imageExtensions[contentType]
	if !ok {
		_ = file.Close()
		return nil, ErrUnsupportedType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("rewind file: %w", err)
	}

	return &Image{
		File:        file,
		Header:      header,
		ContentType: contentType,
		Ext:         ext,
	}, nil
}

// WriteError maps ReadImage errors to a JSON error response.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingFile):
		pkg.WriteJSONError(w, "No file uploaded", http.StatusBadRequest)
	case errors.Is(err, ErrFileTooLarge):
		pkg.WriteJSONError(w, "File too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, ErrUnsupportedType):
		pkg.WriteJSONError(w, "Unsupported image type", http.StatusBadRequest)
	default:
		log.Errorf("read upload: %s", err)
		pkg.WriteJSONError(w, "Invalid upload", http.StatusBadRequest)
	}
}
