package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/warmachine/internal/auth"
	"github.com/2beens/warmachine/internal/config"
	"github.com/2beens/warmachine/internal/db"
	"github.com/2beens/warmachine/internal/gallery"
	"github.com/2beens/warmachine/internal/gymstats/analyzer"
	"github.com/2beens/warmachine/internal/gymstats/bodyweight"
	"github.com/2beens/warmachine/internal/gymstats/targets"
	"github.com/2beens/warmachine/internal/gymstats/transfer"
	"github.com/2beens/warmachine/internal/gymstats/workouts"
	"github.com/2beens/warmachine/internal/middleware"
	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/metrics"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/internal/uploads"
	"github.com/2beens/warmachine/internal/users"
	"github.com/2beens/warmachine/pkg"
)

const (
	sessionsCleanupInterval = 8 * time.Hour
	// leftover request body drained after a handler returns
	maxDrainBytes = 256 << 10
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config       *config.Config
	db           *db.DB
	redisClient  *redis.Client
	sessionStore session.Store
	cookies      *session.CookieManager
	authService  *auth.Service
	storage      *uploads.DiskStorage

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	var rdb *redis.Client
	if cfg.RedisHost != "" && cfg.RedisPort != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       0, // use default DB
		})
		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			if cfg.SessionStore == config.SessionStoreRedis {
				_ = rdb.Close()
				return nil, fmt.Errorf("ping redis: %w", err)
			}
			// redis only backs the login rate limiter here, run without it
			log.Warnf("--> failed to ping redis, auth rate limiting disabled: %s", err)
			_ = rdb.Close()
			rdb = nil
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "warmachine", rdb)
	if err != nil {
		return nil, err
	}

	database, err := db.Open(ctx, db.ParamsFromConfig(cfg, params.HoneycombTracingEnabled))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	tables, err := db.Migrate(ctx, database)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	log.Debugf("db schema ready, tables: %v", tables)

	promRegistry := metrics.SetupPrometheus(database.Collector)
	metricsManager := metrics.NewManager("warmachine", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var sessionStore session.Store
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		redisStore := session.NewRedisStore(cfg.SessionTTL, rdb)
		go func() {
			ticker := time.NewTicker(sessionsCleanupInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					redisStore.ScanAndClean(ctx)
				}
			}
		}()
		sessionStore = redisStore
	default:
		sessionStore = session.NewMemoryStore(cfg.MemorySessionsSizeB, cfg.SessionTTL)
	}

	storage, err := uploads.NewDiskStorage(cfg.UploadsPath)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("new uploads storage: %w", err)
	}

	return &Server{
		config:       cfg,
		db:           database,
		redisClient:  rdb,
		sessionStore: sessionStore,
		cookies:      session.NewCookieManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SessionCookieSecure),
		authService: auth.NewService(
			users.NewRepo(database.DB),
			sessionStore,
			cfg.BcryptCost,
			metricsManager,
		),
		storage: storage,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	maxUploadBytes := s.config.MaxUploadSizeMB << 20

	authHandler := auth.NewHandler(s.authService, s.cookies)
	register := http.Handler(http.HandlerFunc(authHandler.HandleRegister))
	login := http.Handler(http.HandlerFunc(authHandler.HandleLogin))
	if s.redisClient != nil {
		reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
		allowedPerMin := s.config.AuthRateLimitAllowedPerMin
		register = middleware.RateLimit(reqRateLimiter, "register", allowedPerMin, s.config.TrustedProxies, s.metricsManager)(register)
		login = middleware.RateLimit(reqRateLimiter, "login", allowedPerMin, s.config.TrustedProxies, s.metricsManager)(login)
	} else {
		log.Warnln("no redis client, auth endpoints are not rate limited")
	}
	r.Handle("/api/auth/register", register).Methods("POST", "OPTIONS").Name("register")
	r.Handle("/api/auth/login", login).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/api/auth/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	r.HandleFunc("/api/auth/me", authHandler.HandleMe).Methods("GET", "OPTIONS").Name("me")

	usersHandler := users.NewHandler(users.NewRepo(s.db.DB), s.storage, s.metricsManager, maxUploadBytes)
	r.HandleFunc("/api/user/profile", usersHandler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/api/user/profile", usersHandler.HandleUpdateProfile).Methods("POST", "OPTIONS").Name("update-profile")
	r.HandleFunc("/api/user/accent", usersHandler.HandleUpdateAccent).Methods("POST", "OPTIONS").Name("update-accent")
	r.HandleFunc("/api/user/upload-photo", usersHandler.HandleUploadPhoto).Methods("POST", "OPTIONS").Name("upload-photo")

	workoutsRepo := workouts.NewRepo(s.db.DB)
	bodyWeightRepo := bodyweight.NewRepo(s.db.DB)
	targetsRepo := targets.NewRepo(s.db.DB)

	// gym routes with fixed paths go before /api/gym/{id}
	analyzerHandler := analyzer.NewHandler(analyzer.NewAnalyzer(workoutsRepo, bodyWeightRepo, targetsRepo))
	r.HandleFunc("/api/dashboard/summary", analyzerHandler.HandleDashboardSummary).Methods("GET", "OPTIONS").Name("dashboard-summary")
	r.HandleFunc("/api/gym/stats", analyzerHandler.HandleStats).Methods("GET", "OPTIONS").Name("gym-stats")
	r.HandleFunc("/api/gym/records", analyzerHandler.HandleRecords).Methods("GET", "OPTIONS").Name("gym-records")
	r.HandleFunc("/api/gym/history", analyzerHandler.HandleHistory).Methods("GET", "OPTIONS").Name("gym-history")
	r.HandleFunc("/api/gym/1rm", analyzerHandler.HandleOneRepMax).Methods("GET", "OPTIONS").Name("gym-1rm")
	r.HandleFunc("/api/targets/progress", analyzerHandler.HandleTargetsProgress).Methods("GET", "OPTIONS").Name("targets-progress")

	transferHandler := transfer.NewHandler(workoutsRepo, s.metricsManager)
	r.HandleFunc("/api/gym/import", transferHandler.HandleImport).Methods("POST", "OPTIONS").Name("gym-import")
	r.HandleFunc("/api/gym/export", transferHandler.HandleExportCSV).Methods("GET", "OPTIONS").Name("gym-export")
	r.HandleFunc("/api/gym/backup", transferHandler.HandleBackup).Methods("GET", "OPTIONS").Name("gym-backup")

	workoutsHandler := workouts.NewHandler(workoutsRepo, s.metricsManager)
	r.HandleFunc("/api/gym", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/api/gym", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/api/gym/{id:[0-9]+}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	bodyWeightHandler := bodyweight.NewHandler(bodyWeightRepo)
	r.HandleFunc("/api/weight", bodyWeightHandler.HandleList).Methods("GET", "OPTIONS").Name("list-weights")
	r.HandleFunc("/api/weight", bodyWeightHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-weight")
	r.HandleFunc("/api/weight/{id:[0-9]+}", bodyWeightHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weight")

	targetsHandler := targets.NewHandler(targetsRepo)
	r.HandleFunc("/api/targets", targetsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-targets")
	r.HandleFunc("/api/targets", targetsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-target")
	r.HandleFunc("/api/targets/{id:[0-9]+}", targetsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-target")

	galleryHandler := gallery.NewHandler(gallery.NewRepo(s.db.DB), s.storage, s.metricsManager, maxUploadBytes)
	r.HandleFunc("/api/gallery", galleryHandler.HandleList).Methods("GET", "OPTIONS").Name("list-gallery")
	r.HandleFunc("/api/gallery/upload", galleryHandler.HandleUpload).Methods("POST", "OPTIONS").Name("upload-gallery")

	// all the rest of the api - unhandled paths
	r.PathPrefix("/api/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSONError(w, "Not found", http.StatusNotFound)
	}).Name("unknown")

	r.PathPrefix(uploads.PublicPrefix).Handler(otelhttp.NewHandler(
		uploads.NewFileHandler(s.storage),
		"uploads",
	)).Methods("GET", "HEAD").Name("uploads")

	if s.config.PublicDir != "" {
		r.PathPrefix("/").Handler(otelhttp.NewHandler(
			newFrontendHandler(s.config.PublicDir),
			"frontend",
		)).Methods("GET", "HEAD").Name("frontend")
	}

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authService, s.cookies)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(maxDrainBytes))

	return r, nil
}

// frontendHandler serves the built frontend; paths that are not files
// get index.html so client side routes survive a reload.
type frontendHandler struct {
	publicDir  string
	fileServer http.Handler
}

func newFrontendHandler(publicDir string) *frontendHandler {
	return &frontendHandler{
		publicDir:  publicDir,
		fileServer: http.FileServer(http.Dir(publicDir)),
	}
}

func (h *frontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cleaned := filepath.Clean("/" + r.URL.Path)
	if cleaned != "/" && !strings.HasSuffix(cleaned, "/") {
		fullPath := filepath.Join(h.publicDir, filepath.FromSlash(cleaned))
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(h.publicDir, "index.html"))
			return
		}
	}
	h.fileServer.ServeHTTP(w, r)
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Errorf("failed to close db: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
