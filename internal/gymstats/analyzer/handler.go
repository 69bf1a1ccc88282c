package analyzer

import (
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/pkg"
)

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (h *Handler) HandleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analyzer.dashboard")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	summary, err := h.analyzer.DashboardSummary(ctx, uid)
	if err != nil {
		log.Errorf("dashboard summary for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to compute dashboard", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, summary)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analyzer.stats")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.analyzer.TrainingStats(ctx, uid)
	if err != nil {
		log.Errorf("training stats for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to compute stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, stats)
}

func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analyzer.records")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	records, err := h.analyzer.PersonalRecords(ctx, uid)
	if err != nil {
		log.Errorf("personal records for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to compute records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, records)
}

func (h *Handler) HandleTargetsProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analyzer.targetsProgress")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	progress, err := h.analyzer.TargetsProgress(ctx, uid)
	if err != nil {
		log.Errorf("targets progress for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to compute progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, progress)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analyzer.history")
	defer span.End()

	uid, ok := session.RequireUserID(w, r)
	if !ok {
		return
	}

	history, err := h.analyzer.History(ctx, uid, r.URL.Query().Get("search"))
	if err != nil {
		log.Errorf("history for user %d: %s", uid, err)
		pkg.WriteJSONError(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, history)
}

// HandleOneRepMax needs no stored data: ?weight=&reps=.
func (h *Handler) HandleOneRepMax(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.analyzer.oneRepMax")
	defer span.End()

	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil {
		pkg.WriteJSONError(w, "invalid weight", http.StatusBadRequest)
		return
	}
	reps, err := strconv.Atoi(r.URL.Query().Get("reps"))
	if err != nil {
		pkg.WriteJSONError(w, "invalid reps", http.StatusBadRequest)
		return
	}

	table, err := ComputeOneRepMaxTable(weight, reps)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSONOK(w, table)
}
