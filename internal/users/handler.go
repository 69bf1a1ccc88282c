package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/metrics"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/internal/uploads"
	"github.com/2beens/warmachine/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, id int64, p ProfileUpdate) error
	UpdateAccentColor(ctx context.Context, id int64, color string) error
	UpdateProfilePicture(ctx context.Context, id int64, picturePath string) error
}

type fileStorage interface {
	Save(ctx context.Context, params uploads.SaveFileParams) (*uploads.SavedFile, error)
	Remove(ctx context.Context, name string) error
}

type AccentRequest struct {
	Color string `json:"color"`
}

type AccentResponse struct {
	Message string `json:"message"`
	Color   string `json:"color"`
}

type PhotoResponse struct {
	Message  string `json:"message"`
	PhotoURL string `json:"photoUrl"`
}

type Handler struct {
	repo           usersRepo
	storage        fileStorage
	metricsManager *metrics.Manager
	maxUploadBytes int64
}

func NewHandler(
	repo usersRepo,
	storage fileStorage,
	metricsManager *metrics.Manager,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		repo:           repo,
		storage:        storage,
		metricsManager: metricsManager,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profile")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.WriteJSONError(w, "User not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, user)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updateProfile")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	var update ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("update profile, unmarshal json: %s", err)
		pkg.WriteJSONError(w, "Invalid profile payload", http.StatusBadRequest)
		return
	}
	if err := update.Normalize(); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateProfile(ctx, uid, update); err != nil {
		log.Errorf("update profile for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteMessage(w, "Profile updated", http.StatusOK)
}

func (h *Handler) HandleUpdateAccent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.accent")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	var req AccentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSONError(w, "Invalid accent payload", http.StatusBadRequest)
		return
	}
	color := strings.ToLower(strings.TrimSpace(req.Color))
	if err := ValidateAccentColor(color); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateAccentColor(ctx, uid, color); err != nil {
		log.Errorf("update accent color for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to update accent color", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, AccentResponse{
		Message: "Accent color updated",
		Color:   color,
	})
}

func (h *Handler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.uploadPhoto")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	img, err := uploads.ReadImage(r, "photo", h.maxUploadBytes)
	if err != nil {
		uploads.WriteError(w, err)
		return
	}
	defer img.Close()

	saved, err := h.storage.Save(ctx, uploads.SaveFileParams{
		Prefix:  "profile",
		OwnerID: uid,
		Ext:     img.Ext,
		File:    img.File,
	})
	if err != nil {
		log.Errorf("save profile photo for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to store photo", http.StatusInternalServerError)
		return
	}

	if err := h.repo.UpdateProfilePicture(ctx, uid, saved.URL); err != nil {
		log.Errorf("update profile picture for user %d: %s", uid, err)
		h.discardUpload(ctx, saved.Name)
		pkg.WriteJSONError(w, "Failed to update profile picture", http.StatusInternalServerError)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterUploads.WithLabelValues("profile").Inc()
	}
	log.Debugf("user %d uploaded profile photo %s", uid, saved.Name)

	pkg.WriteJSONOK(w, PhotoResponse{
		Message:  "Photo uploaded",
		PhotoURL: saved.URL,
	})
}

// discardUpload removes a stored file no row points to.
func (h *Handler) discardUpload(ctx context.Context, name string) {
	if err := h.storage.Remove(ctx, name); err != nil {
		log.Errorf("remove orphaned upload %s: %s", name, err)
	}
}
