package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds the runtime settings for the narration daemon.
type Config struct {
	Addr           string
	AudioTempDir   string
	PlayerCmd      string
	TTSURL         string
	TTSAPIKey      string
	RabbitMQURL    string
	AnalysisQueue  string
	PreferRendered bool
	Intermission   time.Duration
}

// Load reads configuration from the environment, applying defaults. An empty
// RabbitMQURL disables the broker consumer; an empty PlayerCmd selects the
// player's built-in default.
func Load() Config {
	return Config{
		Addr:           getEnv("NARRATE_ADDR", ":8000"),
		AudioTempDir:   getEnv("AUDIO_TEMP_DIR", filepath.Join("outputs", "audio_clips")),
		PlayerCmd:      os.Getenv("PLAYER_CMD"),
		TTSURL:         os.Getenv("TTS_URL"),
		TTSAPIKey:      os.Getenv("TTS_API_KEY"),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		AnalysisQueue:  getEnv("ANALYSIS_QUEUE", "image.analysis.result"),
		PreferRendered: getBool("PREFER_RENDERED", true),
		Intermission:   time.Duration(getInt("INTERMISSION_MS", 500)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}
