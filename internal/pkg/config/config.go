package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	TransitionPolicyStrict     = "strict"
	TransitionPolicyMembership = "membership"

	OTPStoreRedis  = "redis"
	OTPStoreMemory = "memory"
)

type (
	App struct {
		Env      string
		LogLevel string
	}

	Tasks struct {
		PendingReminderInterval  time.Duration
		PendingReminderThreshold time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		BookingEvents BookingEvents
	}

	BookingEvents struct {
		ProcessTimeout time.Duration
	}

	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}

	OTP struct {
		Store      string
		StaticCode string
	}

	SMS struct {
		TwilioAccountSID string
		TwilioAuthToken  string
		TwilioFromNumber string
	}

	Booking struct {
		TransitionPolicy string
		PageSize         uint64
	}

	Chat struct {
		SendBuffer   int
		PingInterval time.Duration
		RedisRelay   bool
	}

	Config struct {
		App      App
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Kafka    Kafka
		Auth     Auth
		OTP      OTP
		SMS      SMS
		Booking  Booking
		Chat     Chat
	}
)

func (a App) IsProduction() bool {
	return a.Env == EnvProduction
}

// Enabled: без брокеров события пишутся только в лог.
func (k Kafka) Enabled() bool {
	return k.Brokers != ""
}

// ValidateConsumer проверяет настройки, обязательные для воркера-потребителя.
func (k Kafka) ValidateConsumer() error {
	if k.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if k.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if k.Handlers.BookingEvents.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_BOOKING_EVENTS_PROCESS_TIMEOUT is required")
	}
	return nil
}

func (s SMS) Enabled() bool {
	return s.TwilioAccountSID != ""
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase читает только настройки Postgres, для утилит вроде cmd/migrate.
func LoadDatabase() (*Database, error) {
	db := databaseFromEnv()
	if err := validateDatabase(db); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &db, nil
}

func loadFromEnv() (*Config, error) {
	reminderInterval, err := osGetEnvDuration("BACKGROUND_PENDING_REMINDER_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reminderThreshold, err := osGetEnvDuration("BACKGROUND_PENDING_REMINDER_THRESHOLD")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	bookingEventsTimeout, err := osGetEnvDuration("KAFKA_HANDLER_BOOKING_EVENTS_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("AUTH_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pageSize, err := osGetInt("BOOKING_PAGE_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	chatSendBuffer, err := osGetInt("CHAT_SEND_BUFFER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	chatPingInterval, err := osGetEnvDuration("CHAT_PING_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	chatRedisRelay, err := osGetBool("CHAT_REDIS_RELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		App: App{
			Env:      osGetString("APP_ENV", EnvDevelopment),
			LogLevel: osGetString("LOG_LEVEL", "info"),
		},
		Tasks: Tasks{
			PendingReminderInterval:  reminderInterval,
			PendingReminderThreshold: reminderThreshold,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: databaseFromEnv(),
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           osGetString("KAFKA_TOPIC", "booking.events"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   osGetString("KAFKA_SARAMA_VERSION", "3.6.0"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				BookingEvents: BookingEvents{
					ProcessTimeout: bookingEventsTimeout,
				},
			},
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			TokenTTL:  tokenTTL,
		},
		OTP: OTP{
			Store:      osGetString("OTP_STORE", OTPStoreRedis),
			StaticCode: osGetString("OTP_STATIC_CODE", "1234"),
		},
		SMS: SMS{
			TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		},
		Booking: Booking{
			TransitionPolicy: osGetString("BOOKING_TRANSITION_POLICY", TransitionPolicyStrict),
			PageSize:         uint64(max(pageSize, 0)), //nolint:gosec // отрицательные значения отсечены
		},
		Chat: Chat{
			SendBuffer:   chatSendBuffer,
			PingInterval: chatPingInterval,
			RedisRelay:   chatRedisRelay,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.App.Env != EnvProduction && cfg.App.Env != EnvDevelopment {
		return fmt.Errorf("APP_ENV must be %q or %q", EnvProduction, EnvDevelopment)
	}

	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.OTP.Store != OTPStoreRedis && cfg.OTP.Store != OTPStoreMemory {
		return fmt.Errorf("OTP_STORE must be %q or %q", OTPStoreRedis, OTPStoreMemory)
	}
	if (cfg.OTP.Store == OTPStoreRedis || cfg.Chat.RedisRelay) && cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	// хранилище в памяти не переживает рестарт и не разделяется между репликами
	if cfg.OTP.Store == OTPStoreMemory && cfg.App.IsProduction() {
		return errors.New("OTP_STORE=memory is not allowed in production")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if cfg.Auth.TokenTTL == time.Duration(0) {
		return errors.New("AUTH_TOKEN_TTL is required")
	}

	if cfg.SMS.Enabled() && (cfg.SMS.TwilioAuthToken == "" || cfg.SMS.TwilioFromNumber == "") {
		return errors.New("TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER are required when TWILIO_ACCOUNT_SID is set")
	}

	if cfg.Booking.TransitionPolicy != TransitionPolicyStrict && cfg.Booking.TransitionPolicy != TransitionPolicyMembership {
		return fmt.Errorf("BOOKING_TRANSITION_POLICY must be %q or %q", TransitionPolicyStrict, TransitionPolicyMembership)
	}
	if cfg.Booking.PageSize == 0 {
		return errors.New("BOOKING_PAGE_SIZE is required")
	}

	if cfg.Tasks.PendingReminderInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PENDING_REMINDER_INTERVAL is required")
	}
	if cfg.Tasks.PendingReminderThreshold == time.Duration(0) {
		return errors.New("BACKGROUND_PENDING_REMINDER_THRESHOLD is required")
	}

	if cfg.Chat.SendBuffer == 0 {
		return errors.New("CHAT_SEND_BUFFER is required")
	}
	if cfg.Chat.PingInterval == time.Duration(0) {
		return errors.New("CHAT_PING_INTERVAL is required")
	}

	if cfg.Kafka.Enabled() && cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}

	return nil
}

func databaseFromEnv() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetString(s, fallback string) string {
	val := os.Getenv(s)
	if val == "" {
		return fallback
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
