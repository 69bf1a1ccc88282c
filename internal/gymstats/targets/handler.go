package targets

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

//go:generate mockgen -source=$GOFILE -destination=targets_mocks_test.go -package=targets_test

type targetsRepo interface {
	List(ctx context.Context, userID int64) ([]Target, error)
	Add(ctx context.Context, userID int64, t Target) (*Target, error)
	Delete(ctx context.Context, userID, id int64) (int64, error)
}

type Handler struct {
	repo targetsRepo
}

func NewHandler(repo targetsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.list")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	list, err := h.repo.List(ctx, uid)
	if err != nil {
		log.Errorf("list targets for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to load targets", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, list)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.add")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	var t Target
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		pkg.WriteJSONError(w, "Invalid target payload", http.StatusBadRequest)
		return
	}
	if err := t.Normalize(); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.repo.Add(ctx, uid, t)
	if err != nil {
		log.Errorf("add target for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to add target", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.delete")
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
		log.Errorf("delete target %d for user %d: %s", id, uid, err)
		pkg.WriteJSONError(w, "Failed to delete target", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, gymstats.NewDeleteResponse(changes))
}
