package constants

import "os"

func GetListenAddr() string {
	addr := os.Getenv("MUSIKA_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetLogLevel() string {
	level := os.Getenv("MUSIKA_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

func GetCorsOrigins() string {
	origins := os.Getenv("MUSIKA_CORS_ORIGINS")
	if origins != "" {
		return origins
	}
	return "*"
}

const RequestIdHeader = "X-Request-Id"
