package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/agpcoach/agp/internal/account"
	"github.com/agpcoach/agp/internal/auth"
	"github.com/agpcoach/agp/internal/config"
	"github.com/agpcoach/agp/internal/db"
	"github.com/agpcoach/agp/internal/goals"
	"github.com/agpcoach/agp/internal/journal"
	"github.com/agpcoach/agp/internal/measurements"
	"github.com/agpcoach/agp/internal/middleware"
	"github.com/agpcoach/agp/internal/notifications"
	"github.com/agpcoach/agp/internal/profile"
	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/progress"
	"github.com/agpcoach/agp/internal/push"
	"github.com/agpcoach/agp/internal/telemetry/metrics"
	"github.com/agpcoach/agp/internal/telemetry/tracing"
	"github.com/agpcoach/agp/internal/tracking"
	"github.com/agpcoach/agp/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	sessionsCleanupPeriod     = 8 * time.Hour
	notificationsPurgePeriod  = 24 * time.Hour
	readNotificationRetention = 90 * 24 * time.Hour
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	calendar *program.Calendar
	dbPool   *pgxpool.Pool

	redisClient    *redis.Client
	rateLimiter    middleware.RequestRateLimiter
	sessionChecker auth.Checker
	authService    *auth.Service

	signupDateCache      *profile.SignupDateCache
	notificationsService *notifications.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
	ApplySchema             bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	loc, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "agp-backend")
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		ConnString:     params.Config.PostgresURL,
		MaxConns:       params.Config.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.ApplySchema {
		if err := db.ApplySchema(ctx, dbPool); err != nil {
			return nil, err
		}
		log.Infoln("db schema applied")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "agp"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("agp", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	calendar := program.NewCalendar(loc)

	return &Server{
		config:      params.Config,
		calendar:    calendar,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:    rdb,
		rateLimiter:    redis_rate.NewLimiter(rdb),
		sessionChecker: auth.NewSessionChecker(params.Config.SessionTTL(), rdb),
		authService:    auth.NewService(params.Config.SessionTTL(), rdb),

		signupDateCache: profile.NewSignupDateCache(params.Config.ProfileCacheSizeMB),
		notificationsService: notifications.NewService(
			notifications.NewRepo(dbPool),
			notifications.NewPublisher(rdb),
			calendar,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("agp-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	// account
	accountHandler := account.NewHandler(
		account.NewService(
			account.NewRepo(s.dbPool),
			s.authService,
			s.calendar,
			s.metricsManager,
		),
	)
	r.HandleFunc("/a/logout", accountHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	accountRouter := r.PathPrefix("/a").Subrouter()
	accountRouter.HandleFunc("/signup", accountHandler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	accountRouter.HandleFunc("/login", accountHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	// rate limit signup and login to prevent abuse
	accountRouter.Use(middleware.RateLimit(
		s.rateLimiter,
		"account",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	))

	// profile
	profileService := profile.NewService(
		profile.NewRepo(s.dbPool),
		s.signupDateCache,
		s.calendar,
	)
	profileHandler := profile.NewHandler(profileService)
	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", profileHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")

	// progress & tracking
	progressRepo := progress.NewRepo(s.dbPool)
	progressService := progress.NewService(
		progressRepo,
		s.calendar,
		s.config.StreakHistoryLimit,
		s.metricsManager,
	)
	progressHandler := progress.NewHandler(progressService, profileService)
	r.HandleFunc("/progress", progressHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-progress")
	r.HandleFunc("/progress/badges", progressHandler.HandleBadges).Methods("GET", "OPTIONS").Name("get-badges")

	trackingHandler := tracking.NewHandler(
		tracking.NewService(
			tracking.NewRepo(s.dbPool),
			progressRepo,
			progressService,
			s.notificationsService,
			s.calendar,
			s.metricsManager,
			s.config.StreakHistoryLimit,
		),
	)
	r.HandleFunc("/tracking/food", trackingHandler.HandleSubmitFood).Methods("POST", "OPTIONS").Name("submit-food")
	r.HandleFunc("/tracking/wellness", trackingHandler.HandleSubmitWellness).Methods("PUT", "OPTIONS").Name("submit-wellness")
	r.HandleFunc("/tracking/day/{date}", trackingHandler.HandleDay).Methods("GET", "OPTIONS").Name("tracking-day")
	r.HandleFunc("/tracking/dates", trackingHandler.HandleDates).Methods("GET", "OPTIONS").Name("tracking-dates")

	// measurements
	measurementsHandler := measurements.NewHandler(measurements.NewRepo(s.dbPool), s.calendar)
	r.HandleFunc("/measurements", measurementsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-measurement")
	r.HandleFunc("/measurements", measurementsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-measurements")
	r.HandleFunc("/measurements/{id}", measurementsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-measurement")

	// journal
	journalHandler := journal.NewHandler(journal.NewRepo(s.dbPool), s.calendar)
	r.HandleFunc("/journal", journalHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-journal-entry")
	r.HandleFunc("/journal/page/{page}/size/{size}", journalHandler.HandleGetPage).Methods("GET", "OPTIONS").Name("journal-page")
	r.HandleFunc("/journal/{id}", journalHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-journal-entry")

	// goals
	goalsHandler := goals.NewHandler(goals.NewRepo(s.dbPool), s.calendar)
	r.HandleFunc("/goals", goalsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/goals", goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/goals/{id}/achieved", goalsHandler.HandleSetAchieved).Methods("PUT", "OPTIONS").Name("goal-achieved")
	r.HandleFunc("/goals/{id}", goalsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-goal")

	// notifications
	notificationsHandler := notifications.NewHandler(
		s.notificationsService,
		notifications.NewPublisher(s.redisClient),
		s.metricsManager,
	)
	r.HandleFunc("/notifications", notificationsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-notifications")
	r.HandleFunc("/notifications/read-all", notificationsHandler.HandleMarkAllRead).Methods("PUT", "OPTIONS").Name("read-all-notifications")
	r.HandleFunc("/notifications/{id}/read", notificationsHandler.HandleMarkRead).Methods("PUT", "OPTIONS").Name("read-notification")
	r.HandleFunc("/notifications/unread", notificationsHandler.HandleUnread).Methods("GET", "OPTIONS").Name("unread-notifications")
	r.HandleFunc("/notifications/stream", notificationsHandler.HandleStream).Methods("GET", "OPTIONS").Name("notifications-stream")

	// push subscriptions
	pushHandler := push.NewHandler(push.NewRepo(s.dbPool), s.calendar)
	r.HandleFunc("/push/subscription", pushHandler.HandleSubscribe).Methods("PUT", "OPTIONS").Name("push-subscribe")
	r.HandleFunc("/push/subscription", pushHandler.HandleUnsubscribe).Methods("DELETE", "OPTIONS").Name("push-unsubscribe")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessionChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	// no write timeout: the notifications stream is long-lived
	s.httpServer = &http.Server{
		Handler:           router,
		Addr:              ipAndPort,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		IdleTimeout:       2 * time.Minute,
		ConnState:         s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
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

	go runPeriodically(ctx, sessionsCleanupPeriod, s.authService.ScanAndClean)
	go runPeriodically(ctx, notificationsPurgePeriod, func(ctx context.Context) {
		s.notificationsService.PurgeRead(ctx, readNotificationRetention)
	})

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// runPeriodically calls task every period until ctx is done.
func runPeriodically(ctx context.Context, period time.Duration, task func(ctx context.Context)) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			task(ctx)
		}
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
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

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
