package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// CameraDef is one camera slot as configured at startup.
type CameraDef struct {
	ID      string
	URL     string
	Mode    string // "snapshot" or "stream"
	Enabled bool
}

type Config struct {
	// Application
	Version  string
	Port     int
	LogLevel string

	// Logdy (lightweight web log viewer)
	LogdyEnabled bool
	LogdyHost    string
	LogdyPort    int

	// Cameras
	Cameras          []CameraDef
	VLMCamera        string // camera id feeding the filter evaluator
	CaptureInterval  time.Duration
	CameraTimeout    time.Duration
	CaptureLogSample int // log every Nth successful capture

	// Filter evaluation
	EvalInterval time.Duration

	// VLM (OpenAI-compatible chat completions API)
	OpenAIKey     string
	OpenAIBaseURL string
	VLMModel      string
	VLMMaxTokens  int
	VLMTimeout    time.Duration

	// Activity log
	ActivityLogCapacity int

	// Frame recording
	RecordEnabled bool
	FrameDir      string
	FrameMaxFiles int // max persisted frames kept per camera

	// Alerting via NATS
	AlertsEnabled  bool
	AlertsSubject  string
	AlertsCooldown time.Duration

	// NATS
	NatsURL            string
	NatsConnectTimeout time.Duration
	NatsReconnectWait  time.Duration
	NatsMaxReconnects  int

	// Swagger Configuration
	SwaggerEnabled bool
	SwaggerHost    string
	SwaggerPort    int

	// Graceful Shutdown
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found or error loading .env file, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		Version:  getEnv("VERSION", "1.0.0"),
		Port:     getEnvInt("PORT", 5000),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Logdy (lightweight web log viewer)
		LogdyEnabled: getEnvBool("LOGDY_ENABLED", false),
		LogdyHost:    getEnv("LOGDY_HOST", "localhost"),
		LogdyPort:    getEnvInt("LOGDY_PORT", 8080),

		// Cameras
		Cameras:          loadCameras(),
		VLMCamera:        getEnv("VLM_CAMERA", "A"),
		CaptureInterval:  getEnvDuration("CAPTURE_INTERVAL", 1*time.Second),
		CameraTimeout:    getEnvDuration("CAMERA_TIMEOUT", 5*time.Second),
		CaptureLogSample: getEnvInt("CAPTURE_LOG_SAMPLE", 30),

		// Filter evaluation
		EvalInterval: getEnvDuration("EVAL_INTERVAL", 3*time.Second),

		// VLM
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		VLMModel:      getEnv("VLM_MODEL", "gpt-4o"),
		VLMMaxTokens:  getEnvInt("VLM_MAX_TOKENS", 150),
		VLMTimeout:    getEnvDuration("VLM_TIMEOUT", 30*time.Second),

		// Activity log
		ActivityLogCapacity: getEnvInt("ACTIVITY_LOG_CAPACITY", 200),

		// Frame recording
		RecordEnabled: getEnvBool("RECORD_ENABLED", false),
		FrameDir:      getEnv("FRAME_DIR", "frames"),
		FrameMaxFiles: getEnvInt("FRAME_MAX_FILES", 500),

		// Alerting via NATS
		AlertsEnabled:  getEnvBool("ALERTS_ENABLED", false),
		AlertsSubject:  getEnv("ALERTS_SUBJECT", "filters.alerts"),
		AlertsCooldown: getEnvDuration("ALERTS_COOLDOWN", 10*time.Second),

		// NATS
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsConnectTimeout: getEnvDuration("NATS_CONNECT_TIMEOUT", 10*time.Second),
		NatsReconnectWait:  getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		NatsMaxReconnects:  getEnvInt("NATS_MAX_RECONNECTS", -1), // -1 = unlimited

		// Swagger Configuration
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
		SwaggerHost:    getEnv("SWAGGER_HOST", "localhost"),
		SwaggerPort:    getEnvInt("SWAGGER_PORT", 5000),

		// Graceful Shutdown
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// loadCameras reads the CAMERA_<ID>_* variables for the fixed slot ids A, B
// and C. Slots keep their defaults when no variables are set, so the monitor
// comes up with three feeds out of the box.
func loadCameras() []CameraDef {
	defaults := []CameraDef{
		{ID: "A", URL: "http://10.0.0.197:8080/cam_a", Mode: "snapshot", Enabled: true},
		{ID: "B", URL: "http://10.0.0.197:8080/cam_b", Mode: "snapshot", Enabled: true},
		{ID: "C", URL: "http://10.0.0.197:8080/cam_c", Mode: "snapshot", Enabled: true},
	}

	cams := make([]CameraDef, 0, len(defaults))
	for _, def := range defaults {
		prefix := "CAMERA_" + def.ID + "_"
		cam := CameraDef{
			ID:      def.ID,
			URL:     getEnv(prefix+"URL", def.URL),
			Mode:    strings.ToLower(getEnv(prefix+"MODE", def.Mode)),
			Enabled: getEnvBool(prefix+"ENABLED", def.Enabled),
		}
		if cam.Mode != "snapshot" && cam.Mode != "stream" {
			log.Warn().Str("camera_id", cam.ID).Str("mode", cam.Mode).Msg("Unknown camera mode, using snapshot")
			cam.Mode = "snapshot"
		}
		cams = append(cams, cam)
	}
	return cams
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
