package gallery

import (
	"context"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/metrics"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/internal/uploads"
	"github.com/2beens/warmachine/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=gallery_mocks_test.go -package=gallery_test

type galleryRepo interface {
	List(ctx context.Context, category string) ([]Item, error)
	Add(ctx context.Context, item Item) (*Item, error)
}

type fileStorage interface {
	Save(ctx context.Context, params uploads.SaveFileParams) (*uploads.SavedFile, error)
	Remove(ctx context.Context, name string) error
}

type Handler struct {
	repo           galleryRepo
	storage        fileStorage
	metricsManager *metrics.Manager
	maxUploadBytes int64
	now            func() time.Time
}

func NewHandler(
	repo galleryRepo,
	storage fileStorage,
	metricsManager *metrics.Manager,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		repo:           repo,
		storage:        storage,
		metricsManager: metricsManager,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gallery.list")
	defer span.End()

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	items, err := h.repo.List(ctx, category)
	if err != nil {
		log.Errorf("list gallery items: %s", err)
		pkg.WriteJSONError(w, "Failed to get gallery", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, items)
}

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gallery.upload")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	img, err := uploads.ReadImage(r, "drawing", h.maxUploadBytes)
	if err != nil {
		uploads.WriteError(w, err)
		return
	}
	defer img.Close()

	now := h.now()
	item := Item{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
		Date:     r.FormValue("date"),
		UserID:   uid,
	}
	if err := item.Normalize(now); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.storage.Save(ctx, uploads.SaveFileParams{
		Prefix:  "drawing",
		OwnerID: uid,
		Ext:     img.Ext,
		File:    img.File,
	})
	if err != nil {
		log.Errorf("save drawing for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to store drawing", http.StatusInternalServerError)
		return
	}

	item.Filename = saved.URL
	item.CreatedAt = now.Unix()
	added, err := h.repo.Add(ctx, item)
	if err != nil {
		log.Errorf("add gallery item for user %d: %s", uid, err)
		h.discardUpload(ctx, saved.Name)
		pkg.WriteJSONError(w, "Failed to save drawing", http.StatusInternalServerError)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterUploads.WithLabelValues("gallery").Inc()
	}
	log.Debugf("user %d added gallery item %d [%s]", uid, added.ID, saved.Name)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

// discardUpload removes a stored file no row points to.
func (h *Handler) discardUpload(ctx context.Context, name string) {
	if err := h.storage.Remove(ctx, name); err != nil {
		log.Errorf("remove orphaned upload %s: %s", name, err)
	}
}
