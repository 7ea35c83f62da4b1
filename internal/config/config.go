package config

import "os"

// Config holds environment-supplied defaults for the CLI. Everything is
// optional; flags and the active device profile override these.
type Config struct {
	ADBPath    string // CEV_ADB (default "adb")
	RemotePath string // CEV_REMOTE_PATH (default source.DefaultRemotePath)
	NATSURL    string // CEV_NATS_URL (required only by forward)

	S3Bucket   string // CEV_S3_BUCKET
	S3Key      string // CEV_S3_KEY
	S3Region   string // CEV_S3_REGION (default "us-east-1")
	S3Endpoint string // CEV_S3_ENDPOINT (custom endpoint for MinIO)
}

func Load() *Config {
	return &Config{
		ADBPath:    envOrDefault("CEV_ADB", "adb"),
		RemotePath: os.Getenv("CEV_REMOTE_PATH"),
		NATSURL:    os.Getenv("CEV_NATS_URL"),
		S3Bucket:   os.Getenv("CEV_S3_BUCKET"),
		S3Key:      os.Getenv("CEV_S3_KEY"),
		S3Region:   envOrDefault("CEV_S3_REGION", "us-east-1"),
		S3Endpoint: os.Getenv("CEV_S3_ENDPOINT"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
