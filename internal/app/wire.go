//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"fmt"

	"food-delivery/internal/gateway/sms"
	activity_get "food-delivery/internal/handlers/rest/activity_get"
	auth_admin_login_post "food-delivery/internal/handlers/rest/auth_admin_login_post"
	auth_login_post "food-delivery/internal/handlers/rest/auth_login_post"
	auth_otp_send_post "food-delivery/internal/handlers/rest/auth_otp_send_post"
	auth_otp_verify_post "food-delivery/internal/handlers/rest/auth_otp_verify_post"
	auth_signup_post "food-delivery/internal/handlers/rest/auth_signup_post"
	booking_assign_post "food-delivery/internal/handlers/rest/booking_assign_post"
	booking_cancel_post "food-delivery/internal/handlers/rest/booking_cancel_post"
	booking_get "food-delivery/internal/handlers/rest/booking_get"
	booking_messages_get "food-delivery/internal/handlers/rest/booking_messages_get"
	booking_messages_unread_get "food-delivery/internal/handlers/rest/booking_messages_unread_get"
	booking_status_get "food-delivery/internal/handlers/rest/booking_status_get"
	booking_status_post "food-delivery/internal/handlers/rest/booking_status_post"
	bookings_get "food-delivery/internal/handlers/rest/bookings_get"
	bookings_post "food-delivery/internal/handlers/rest/bookings_post"
	chat_ws_get "food-delivery/internal/handlers/rest/chat_ws_get"
	dashboard_get "food-delivery/internal/handlers/rest/dashboard_get"
	partners_get "food-delivery/internal/handlers/rest/partners_get"
	profile_get "food-delivery/internal/handlers/rest/profile_get"
	profile_put "food-delivery/internal/handlers/rest/profile_put"
	reports_get "food-delivery/internal/handlers/rest/reports_get"
	user_get "food-delivery/internal/handlers/rest/user_get"
	users_get "food-delivery/internal/handlers/rest/users_get"
	"food-delivery/internal/handlers/tasks/pending_reminder"
	"food-delivery/internal/pkg/broadcast"
	"food-delivery/internal/pkg/config"
	"food-delivery/internal/pkg/middlewares/auth"

	activityRepo "food-delivery/internal/repository/activity"
	bookingRepo "food-delivery/internal/repository/booking"
	chatRepo "food-delivery/internal/repository/chat"
	otpRepo "food-delivery/internal/repository/otp"
	userRepo "food-delivery/internal/repository/user"
	activityService "food-delivery/internal/service/activity"
	authService "food-delivery/internal/service/auth"
	bookingService "food-delivery/internal/service/booking"
	chatService "food-delivery/internal/service/chat"
	notificationService "food-delivery/internal/service/notification"
	otpService "food-delivery/internal/service/otp"
	reportService "food-delivery/internal/service/report"
	userService "food-delivery/internal/service/user"

	"food-delivery/pkg/background"
	"food-delivery/pkg/hasher"
	"food-delivery/pkg/logger"
	"food-delivery/pkg/querier"
	"food-delivery/pkg/token"
	"food-delivery/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const otpCodeLength = 4

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceBooking    ServiceBooking
	ServiceChat       ServiceChat
	ServiceUser       ServiceUser
	ServiceReport     ServiceReport
	ServiceActivity   ServiceActivity
	Hub               *broadcast.Hub
	Relay             *broadcast.RedisRelay
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	auth.Authenticator
	auth_otp_send_post.Service
	auth_otp_verify_post.Service
	auth_signup_post.Service
	auth_login_post.Service
	auth_admin_login_post.Service
}

type ServiceBooking interface {
	bookings_post.Service
	bookings_get.Service
	booking_get.Service
	booking_status_get.Service
	booking_assign_post.Service
	booking_status_post.Service
	booking_cancel_post.Service
}

type ServiceChat interface {
	chat_ws_get.Service
	booking_messages_get.Service
	booking_messages_unread_get.Service
}

type ServiceUser interface {
	profile_get.Service
	profile_put.Service
	partners_get.Service
	users_get.Service
	user_get.Service
}

type ServiceReport interface {
	dashboard_get.Service
	reports_get.Service
}

type ServiceActivity interface {
	activity_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service).
// redisClient равен nil, если ни OTP, ни чат не используют Redis.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	publisher bookingService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideUserRepository,
		provideBookingRepository,
		provideChatRepository,
		provideActivityRepository,
		provideOTPStore,
		provideOTPGenerator,

		provideSMSGateway,
		provideTokenManager,
		providePasswordHasher,
		provideHub,
		provideRelay,
		provideBroadcaster,
		provideTransitionPolicy,

		provideActivityService,
		provideOTPService,
		provideAuthService,
		provideBookingService,
		provideChatService,
		provideUserService,
		provideReportService,

		providePendingReminderTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Service)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),
		wire.Bind(new(ServiceChat), new(*chatService.Service)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceReport), new(*reportService.Service)),
		wire.Bind(new(ServiceActivity), new(*activityService.Recorder)),

		wire.Bind(new(pending_reminder.Service), new(*bookingService.Booking)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-booking-notifications)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideBookingRepository,
		provideSMSGateway,
		provideNotificationService,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

type AdminApp struct {
	ServiceAuth *authService.Service
}

// InitializeAdminApp для утилиты cmd/create-admin
func InitializeAdminApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*AdminApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideUserRepository,
		provideActivityRepository,
		provideMemoryOTPStore,
		provideOTPGenerator,
		provideSMSGateway,
		provideTokenManager,
		providePasswordHasher,
		provideActivityService,
		provideOTPService,
		provideAuthService,

		wire.Struct(new(AdminApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideBookingRepository(querier *querier.Querier) *bookingRepo.Repository {
	return bookingRepo.New(querier)
}

func provideChatRepository(querier *querier.Querier) *chatRepo.Repository {
	return chatRepo.New(querier)
}

func provideActivityRepository(querier *querier.Querier) *activityRepo.Repository {
	return activityRepo.New(querier)
}

func provideOTPStore(cfg *config.Config, redisClient *goredis.Client) (otpService.Store, error) {
	switch cfg.OTP.Store {
	case config.OTPStoreRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("otp store %q: redis client is not configured", cfg.OTP.Store)
		}
		return otpRepo.NewRedisStore(redisClient), nil
	case config.OTPStoreMemory:
		return otpRepo.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown otp store %q", cfg.OTP.Store)
	}
}

// provideMemoryOTPStore: утилитам командной строки коды подтверждения не нужны.
func provideMemoryOTPStore() otpService.Store {
	return otpRepo.NewMemoryStore()
}

func provideOTPGenerator(cfg *config.Config) otpService.CodeGenerator {
	if !cfg.App.IsProduction() && cfg.OTP.StaticCode != "" {
		return otpService.NewStaticGenerator(cfg.OTP.StaticCode)
	}
	return otpService.NewRandomGenerator(otpCodeLength)
}

func provideSMSGateway(cfg *config.Config, log logger.Logger) authService.SMSSender {
	if cfg.SMS.Enabled() {
		return sms.NewTwilio(&cfg.SMS)
	}
	return sms.NewLog(log)
}

func provideTokenManager(cfg *config.Config) *token.Manager {
	return token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func providePasswordHasher() *hasher.Bcrypt {
	return hasher.NewBcrypt(bcrypt.DefaultCost)
}

func provideHub(cfg *config.Config, log logger.Logger) *broadcast.Hub {
	return broadcast.NewHub(log, cfg.Chat.SendBuffer)
}

func provideRelay(cfg *config.Config, redisClient *goredis.Client, hub *broadcast.Hub, log logger.Logger) *broadcast.RedisRelay {
	if !cfg.Chat.RedisRelay || redisClient == nil {
		return nil
	}
	return broadcast.NewRedisRelay(redisClient, hub, log)
}

func provideBroadcaster(hub *broadcast.Hub, relay *broadcast.RedisRelay) chatService.Broadcaster {
	if relay != nil {
		return relay
	}
	return hub
}

func provideTransitionPolicy(cfg *config.Config) (bookingService.TransitionPolicy, error) {
	return bookingService.ParsePolicy(cfg.Booking.TransitionPolicy)
}

func provideActivityService(repository *activityRepo.Repository, log logger.Logger) *activityService.Recorder {
	return activityService.New(repository, log)
}

func provideOTPService(store otpService.Store, generator otpService.CodeGenerator) *otpService.Service {
	return otpService.New(store, generator)
}

func provideAuthService(
	otp *otpService.Service,
	users *userRepo.Repository,
	smsGateway authService.SMSSender,
	tokens *token.Manager,
	passwords *hasher.Bcrypt,
	activity *activityService.Recorder,
	txManager *tx.Manager,
	log logger.Logger,
	cfg *config.Config,
) *authService.Service {
	return authService.New(otp, users, smsGateway, tokens, passwords, activity, txManager, log, authService.Config{
		EchoCode: !cfg.App.IsProduction(),
	})
}

func provideBookingService(
	repository *bookingRepo.Repository,
	users *userRepo.Repository,
	publisher bookingService.EventPublisher,
	activity *activityService.Recorder,
	txManager *tx.Manager,
	log logger.Logger,
	policy bookingService.TransitionPolicy,
	cfg *config.Config,
) *bookingService.Booking {
	return bookingService.New(repository, users, publisher, activity, txManager, log, policy, cfg.Booking.PageSize)
}

func provideChatService(
	repository *chatRepo.Repository,
	bookings *bookingService.Booking,
	broadcaster chatService.Broadcaster,
	log logger.Logger,
) *chatService.Service {
	return chatService.New(repository, bookings, broadcaster, log)
}

func provideUserService(
	repository *userRepo.Repository,
	bookings *bookingRepo.Repository,
	activity *activityService.Recorder,
	cfg *config.Config,
) *userService.User {
	return userService.New(repository, bookings, activity, cfg.Booking.PageSize)
}

func provideReportService(
	bookings *bookingRepo.Repository,
	users *userRepo.Repository,
	unread *chatRepo.Repository,
) *reportService.Service {
	return reportService.New(bookings, users, unread)
}

func provideNotificationService(bookings *bookingRepo.Repository, smsGateway authService.SMSSender) *notificationService.Service {
	return notificationService.New(bookings, smsGateway)
}

func providePendingReminderTask(
	log logger.Logger,
	service pending_reminder.Service,
	cfg *config.Config,
) *pending_reminder.PendingReminder {
	return pending_reminder.NewPendingReminder(log, service, cfg.Tasks.PendingReminderInterval, cfg.Tasks.PendingReminderThreshold)
}

func provideTaskList(
	pendingReminderTask *pending_reminder.PendingReminder,
) []background.Task {
	return []background.Task{
		pendingReminderTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
