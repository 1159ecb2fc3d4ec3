package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "food-delivery/internal/app"
	"food-delivery/internal/handlers/rest/activity_get"
	"food-delivery/internal/handlers/rest/auth_admin_login_post"
	"food-delivery/internal/handlers/rest/auth_login_post"
	"food-delivery/internal/handlers/rest/auth_otp_send_post"
	"food-delivery/internal/handlers/rest/auth_otp_verify_post"
	"food-delivery/internal/handlers/rest/auth_signup_post"
	"food-delivery/internal/handlers/rest/booking_assign_post"
	"food-delivery/internal/handlers/rest/booking_cancel_post"
	"food-delivery/internal/handlers/rest/booking_get"
	"food-delivery/internal/handlers/rest/booking_messages_get"
	"food-delivery/internal/handlers/rest/booking_messages_unread_get"
	"food-delivery/internal/handlers/rest/booking_status_get"
	"food-delivery/internal/handlers/rest/booking_status_post"
	"food-delivery/internal/handlers/rest/bookings_get"
	"food-delivery/internal/handlers/rest/bookings_post"
	"food-delivery/internal/handlers/rest/chat_ws_get"
	"food-delivery/internal/handlers/rest/dashboard_get"
	"food-delivery/internal/handlers/rest/healthcheck_head"
	"food-delivery/internal/handlers/rest/partners_get"
	"food-delivery/internal/handlers/rest/ping_get"
	"food-delivery/internal/handlers/rest/profile_get"
	"food-delivery/internal/handlers/rest/profile_put"
	"food-delivery/internal/handlers/rest/reports_get"
	"food-delivery/internal/handlers/rest/user_get"
	"food-delivery/internal/handlers/rest/users_get"
	"food-delivery/internal/pkg/config"
	"food-delivery/internal/pkg/dotenv"
	"food-delivery/internal/pkg/kafka"
	metrics_system "food-delivery/internal/pkg/metrics"
	"food-delivery/internal/pkg/middlewares/auth"
	"food-delivery/internal/pkg/middlewares/graceful_shutdown"
	"food-delivery/internal/pkg/middlewares/metrics"
	"food-delivery/internal/pkg/middlewares/rate_limiter"
	"food-delivery/internal/pkg/middlewares/request_meta"
	"food-delivery/internal/pkg/middlewares/timeout"
	"food-delivery/internal/pkg/postgres"
	"food-delivery/internal/pkg/redis"
	bookingService "food-delivery/internal/service/booking"
	"food-delivery/pkg/logger"
	"food-delivery/pkg/logger/zap_adapter"
	"food-delivery/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
)

type eventPublisher interface {
	bookingService.EventPublisher
	Close() error
}

func main() {
	opts, dotenvErr := dotenv.Load(os.Args[1:])

	zapLogger, err := zap_adapter.NewZapAdapter(
		zap_adapter.WithLevel(os.Getenv("LOG_LEVEL")),
		zap_adapter.WithDevelopment(os.Getenv("APP_ENV") != config.EnvProduction),
	)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting food-delivery application")

	if dotenvErr != nil {
		mainLog.Error("failed to load env file", logger.NewField("error", dotenvErr))
		return
	}
	if !opts.Loaded {
		mainLog.Warn("No env file found, using system environment variables",
			logger.NewField("env_file", opts.EnvFile),
		)
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	dependencies := map[string]healthcheck_head.Pinger{
		"postgres": pool,
	}

	var redisClient *goredis.Client
	if cfg.OTP.Store == config.OTPStoreRedis || cfg.Chat.RedisRelay {
		redisClient, err = redis.NewClient(ctx, log, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				runLog.Error("failed to close redis client", logger.NewField("error", err))
			}
		}()

		dependencies["redis"] = healthcheck_head.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	publisher, err := newPublisher(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			runLog.Error("failed to close event publisher", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, 0)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// события чата от других реплик
	relayErr := make(chan error, 1)
	if businessApp.Relay != nil {
		ready := make(chan struct{})
		go func() {
			defer close(relayErr)
			if err := businessApp.Relay.Run(ongoingCtx, ready); err != nil && !errors.Is(err, context.Canceled) {
				relayErr <- err
			}
		}()

		select {
		case <-ready:
		case err := <-relayErr:
			return fmt.Errorf("chat relay: %w", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg, dependencies),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	case err := <-relayErr:
		return fmt.Errorf("chat relay: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	// websocket-соединения перехвачены и Shutdown их не ждет: закрываются по ongoingCtx
	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func newPublisher(ctx context.Context, log logger.Logger, cfg *config.Config) (eventPublisher, error) {
	if !cfg.Kafka.Enabled() {
		log.Warn("KAFKA_BROKERS is empty, booking events are written to the log only")
		return kafka.NewLogPublisher(log), nil
	}
	return kafka.NewProducer(ctx, log, &cfg.Kafka)
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
	dependencies map[string]healthcheck_head.Pinger,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, dependencies)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	authMiddleware := auth.Middleware(log, app.ServiceAuth)

	// websocket живет дольше любого таймаута запроса
	ws := router.PathPrefix("/ws").Subrouter()
	ws.Use(request_meta.Middleware())
	ws.Use(authMiddleware)
	ws.Handle("/chat/{id}", chat_ws_get.New(log, app.ServiceChat, app.Hub, cfg.Chat.PingInterval)).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	api.Use(request_meta.Middleware())

	api.Handle("/auth/otp/send", auth_otp_send_post.New(log, app.ServiceAuth)).Methods("POST")
	api.Handle("/auth/otp/verify", auth_otp_verify_post.New(log, app.ServiceAuth)).Methods("POST")
	api.Handle("/auth/signup", auth_signup_post.New(log, app.ServiceAuth)).Methods("POST")
	api.Handle("/auth/login", auth_login_post.New(log, app.ServiceAuth)).Methods("POST")
	api.Handle("/auth/admin/login", auth_admin_login_post.New(log, app.ServiceAuth)).Methods("POST")

	private := api.NewRoute().Subrouter()
	private.Use(authMiddleware)

	private.Handle("/dashboard", dashboard_get.New(log, app.ServiceReport)).Methods("GET")
	private.Handle("/reports", reports_get.New(log, app.ServiceReport)).Methods("GET")

	private.Handle("/profile", profile_get.New(log, app.ServiceUser)).Methods("GET")
	private.Handle("/profile", profile_put.New(log, app.ServiceUser)).Methods("PUT")
	private.Handle("/partners", partners_get.New(log, app.ServiceUser)).Methods("GET")
	private.Handle("/users", users_get.New(log, app.ServiceUser)).Methods("GET")
	private.Handle("/users/{id}", user_get.New(log, app.ServiceUser)).Methods("GET")

	private.Handle("/activity", activity_get.New(log, app.ServiceActivity)).Methods("GET")

	private.Handle("/bookings", bookings_get.New(log, app.ServiceBooking)).Methods("GET")
	private.Handle("/bookings", bookings_post.New(log, app.ServiceBooking)).Methods("POST")
	private.Handle("/bookings/{id}", booking_get.New(log, app.ServiceBooking)).Methods("GET")
	private.Handle("/bookings/{id}/status", booking_status_get.New(log, app.ServiceBooking)).Methods("GET")
	private.Handle("/bookings/{id}/status", booking_status_post.New(log, app.ServiceBooking)).Methods("POST")
	private.Handle("/bookings/{id}/assign", booking_assign_post.New(log, app.ServiceBooking)).Methods("POST")
	private.Handle("/bookings/{id}/cancel", booking_cancel_post.New(log, app.ServiceBooking)).Methods("POST")

	private.Handle("/bookings/{id}/messages", booking_messages_get.New(log, app.ServiceChat)).Methods("GET")
	private.Handle("/bookings/{id}/messages/unread", booking_messages_unread_get.New(log, app.ServiceChat)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
