package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strings" // strings splits the allowed-origins list
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Secrets stay strings; the allowed origins list
// is pre-split so the CORS middleware can consume it directly.
type Config struct {
	Env            string   // application environment (e.g. "dev", "prod")
	Port           string   // HTTP port to listen on
	DBUser         string   // database username
	DBPass         string   // database password (optional)
	DBHost         string   // database host address
	DBPort         string   // database port number
	DBName         string   // database name
	JWTSecret      string   // secret used to sign access tokens
	StripeSecret   string   // secret key for the payment gateway
	AllowedOrigins []string // browser origins allowed by CORS
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),                            // environment (dev/test/prod)
		Port:           must("APP_PORT"),                           // port to bind the HTTP server
		DBUser:         must("DB_USER"),                            // database user
		DBPass:         os.Getenv("DB_PASS"),                       // database password (empty allowed)
		DBHost:         must("DB_HOST"),                            // database host
		DBPort:         must("DB_PORT"),                            // database port
		DBName:         must("DB_NAME"),                            // database name
		JWTSecret:      must("ACCESS_TOKEN_SECRET"),                // secret used for signing JWTs
		StripeSecret:   os.Getenv("STRIPE_SECRET_KEY"),             // gateway key (empty disables intents)
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")), // comma-separated origin allowlist
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// splitOrigins turns a comma-separated origin list into a slice, trimming
// whitespace and dropping empty entries.  An empty input yields a localhost
// default suitable for development.
func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"http://localhost:5173"}
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
