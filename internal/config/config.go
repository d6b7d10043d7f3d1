package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPingerInterval = 10 * time.Second
	defaultClusterTimeout = 10 * time.Second
	defaultMetricsTimeout = 5 * time.Second
	defaultLogTailLines   = 100
)

type Config struct {
	KubeConfig     string
	KubeMaster     string
	LogLevel       string
	LogFormat      string
	HTTPPort       string
	MetricsPort    string
	PingerInterval time.Duration
	ClusterTimeout time.Duration
	MetricsTimeout time.Duration
	LogTailLines   int64
	ReportSchedule string
	ReportTZ       string
}

func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:     getEnvWithFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:     getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		LogLevel:       getEnvOrDefault(envKeyLogLevel, "info"),
		LogFormat:      getEnvOrDefault(envKeyLogFormat, "json"),
		HTTPPort:       getEnvOrDefault(envKeyHTTPPort, "8080"),
		MetricsPort:    getEnvOrDefault(envKeyMetricsPort, "9090"),
		ReportSchedule: os.Getenv(envKeyReportSchedule),
		ReportTZ:       os.Getenv(envKeyReportTZ),
	}

	pingerInterval, err := getDurationEnv(envKeyPingerInterval, defaultPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	cfg.PingerInterval = pingerInterval

	clusterTimeout, err := getDurationEnv(envKeyClusterTimeout, defaultClusterTimeout, envMinClusterTimeout)
	if err != nil {
		return nil, err
	}

	cfg.ClusterTimeout = clusterTimeout

	metricsTimeout, err := getDurationEnv(envKeyMetricsTimeout, defaultMetricsTimeout, envMinMetricsTimeout)
	if err != nil {
		return nil, err
	}

	cfg.MetricsTimeout = metricsTimeout

	tailLines, err := getInt64Env(envKeyLogTailLines, defaultLogTailLines)
	if err != nil {
		return nil, err
	}

	cfg.LogTailLines = tailLines

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

func getEnvWithFallback(key, fallbackKey string) string {
	value := os.Getenv(key)
	if value == "" {
		return os.Getenv(fallbackKey)
	}

	return value
}

func getDurationEnv(key string, defaultValue, minValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value < minValue {
		return 0, fmt.Errorf("parse %s: %s is below minimum %s", key, value, minValue)
	}

	return value, nil
}

func getInt64Env(key string, defaultValue int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value <= 0 {
		return 0, fmt.Errorf("parse %s: must be positive, got %d", key, value)
	}

	return value, nil
}
