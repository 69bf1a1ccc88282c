package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/internal/gymstats"
	"github.com/2beens/warmachine/internal/gymstats/workouts"
	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/metrics"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=transfer_mocks_test.go -package=transfer_test

type workoutsRepo interface {
	List(ctx context.Context, userID int64) ([]workouts.Entry, error)
	AddMany(ctx context.Context, userID int64, entries []workouts.Entry) (int, error)
}

type ImportRequest struct {
	Entries json.RawMessage `json:"entries"`
}

type ImportResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type Backup struct {
	Gym []workouts.Entry `json:"gym"`
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func setAttachment(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
}

func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.transfer.exportCsv")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	entries, err := h.repo.List(ctx, uid)
	if err != nil {
		log.Errorf("export csv for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Export failed", http.StatusInternalServerError)
		return
	}

	setAttachment(w, "warmachine_export.csv")
	pkg.WriteResponseBytesOK(w, pkg.ContentType.CSV, EncodeCSV(entries))
}

func (h *Handler) HandleBackup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.transfer.backup")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	entries, err := h.repo.List(ctx, uid)
	if err != nil {
		log.Errorf("backup for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Backup failed", http.StatusInternalServerError)
		return
	}

	setAttachment(w, fmt.Sprintf("backup_%s.json", gymstats.Today(h.now())))
	pkg.WriteJSONOK(w, Backup{Gym: entries})
}

// HandleImport appends the entries to the user's log in one transaction.
// The payload must carry an "entries" array; every entry is validated before
// anything is written.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.transfer.import")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSONError(w, "Invalid data", http.StatusBadRequest)
		return
	}
	raw := bytes.TrimSpace(req.Entries)
	if len(raw) == 0 || raw[0] != '[' {
		pkg.WriteJSONError(w, "Invalid data", http.StatusBadRequest)
		return
	}

	var entries []workouts.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		pkg.WriteJSONError(w, "Invalid data", http.StatusBadRequest)
		return
	}
	for i := range entries {
		if err := entries[i].Normalize(); err != nil {
			pkg.WriteJSONError(w, fmt.Sprintf("entry %d: %s", i, err), http.StatusBadRequest)
			return
		}
	}

	count, err := h.repo.AddMany(ctx, uid, entries)
	if err != nil {
		log.Errorf("import %d entries for user %d: %s", len(entries), uid, err)
		pkg.WriteJSONError(w, "Import failed", http.StatusInternalServerError)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterImportedEntries.Add(float64(count))
		h.metricsManager.HistImportSize.Observe(float64(count))
	}
	log.Debugf("user %d imported %d workout entries", uid, count)

	pkg.WriteJSONOK(w, ImportResponse{
		Message: "Import successful",
		Count:   count,
	})
}
