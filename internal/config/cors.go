package config

// CorsConfig lists the origins allowed to call the API from a browser.
type CorsConfig struct {
	AllowedOrigins []string
}

func loadCors() CorsConfig {
	return CorsConfig{
		AllowedOrigins: listEnvOrDefault(envCorsOrigins, defaultCorsOrigins),
	}
}
