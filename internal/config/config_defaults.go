package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Analysis Configuration
	v.SetDefault("analysis.tagger", "prose")
	v.SetDefault("analysis.maxDocChars", 0)

	// Benchmarks Configuration
	v.SetDefault("benchmarks.file", "")
	v.SetDefault("benchmarks.watch.enabled", false)
	v.SetDefault("benchmarks.watch.debounceDelay", time.Second)

	// Remote benchmark provider defaults
	v.SetDefault("benchmarks.remote.enabled", false)
	v.SetDefault("benchmarks.remote.url", "")
	v.SetDefault("benchmarks.remote.timeout", 10*time.Second)
	v.SetDefault("benchmarks.remote.refreshInterval", 15*time.Minute)
	v.SetDefault("benchmarks.remote.circuitBreaker.enabled", true)
	v.SetDefault("benchmarks.remote.circuitBreaker.maxRequests", 3)
	v.SetDefault("benchmarks.remote.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("benchmarks.remote.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("benchmarks.remote.circuitBreaker.minRequests", 3)
	v.SetDefault("benchmarks.remote.circuitBreaker.failureThreshold", 0.6)

	// Store Configuration
	v.SetDefault("store.enabled", true)
	v.SetDefault("store.path", "resumatch.db")

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024) // 1MB

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "resumatch")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})
}
