package uploads

import (
	"errors"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/pkg"
)

type fileOpener interface {
	Open(name string) (*os.File, error)
}

// FileHandler serves stored uploads under PublicPrefix. There are no
// directory listings: only exact file names resolve.
type FileHandler struct {
	storage fileOpener
}

func NewFileHandler(storage fileOpener) *FileHandler {
	return &FileHandler{storage: storage}
}

func (h *FileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, PublicPrefix)
	f, err := h.storage.Open(name)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			pkg.WriteJSONError(w, "Not found", http.StatusNotFound)
			return
		}
		log.Errorf("uploads: open %q: %s", name, err)
		pkg.WriteJSONError(w, "Failed to read file", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		log.Errorf("uploads: stat %q: %s", name, err)
		pkg.WriteJSONError(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, name, stat.ModTime(), f)
}
