package workouts

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/internal/gymstats"
	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/metrics"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, userID int64) ([]Entry, error)
	Add(ctx context.Context, userID int64, e Entry) (*Entry, error)
	Delete(ctx context.Context, userID, id int64) (int64, error)
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	entries, err := h.repo.List(ctx, uid)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to load workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, entries)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("add workout, unmarshal json: %s", err)
		pkg.WriteJSONError(w, "Invalid workout payload", http.StatusBadRequest)
		return
	}
	if err := entry.Normalize(); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.repo.Add(ctx, uid, entry)
	if err != nil {
		log.Errorf("add workout for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to add workout", http.StatusInternalServerError)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterWorkoutEntries.Inc()
	}
	log.Debugf("user %d added workout entry %d [%s]", uid, added.ID, added.Exercise)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
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
		log.Errorf("delete workout %d for user %d: %s", id, uid, err)
		pkg.WriteJSONError(w, "Failed to delete workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, gymstats.NewDeleteResponse(changes))
}
