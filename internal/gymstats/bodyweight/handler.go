package bodyweight

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/internal/gymstats"
	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=bodyweight_mocks_test.go -package=bodyweight_test

type bodyWeightRepo interface {
	List(ctx context.Context, userID int64) ([]Entry, error)
	Add(ctx context.Context, userID int64, e Entry) (*Entry, error)
	Delete(ctx context.Context, userID, id int64) (int64, error)
}

type Handler struct {
	repo bodyWeightRepo
}

func NewHandler(repo bodyWeightRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.list")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	entries, err := h.repo.List(ctx, uid)
	if err != nil {
		log.Errorf("list body weight for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to load body weight", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, entries)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.add")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		pkg.WriteJSONError(w, "Invalid body weight payload", http.StatusBadRequest)
		return
	}
	if err := entry.Normalize(); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.repo.Add(ctx, uid, entry)
	if err != nil {
		log.Errorf("add body weight for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to add body weight", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.delete")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	id, err := gymstats.IDFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	changes, err := h.repo.Delete(ctx, uid, id)
	if err != nil {
		log.Errorf("delete body weight %d for user %d: %s", id, uid, err)
		pkg.WriteJSONError(w, "Failed to delete body weight", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, gymstats.NewDeleteResponse(changes))
}
