// Package env reads configuration from the process environment.
//
// Values are interpreted the way dotenv-driven PHP frameworks do:
// "true"/"(true)" and "false"/"(false)" are booleans, "empty"/"(empty)"
// is the empty string, and "null"/"(null)" counts as unset. Surrounding
// double or single quotes are stripped.
//
// Load reads .env files without overriding variables that are already
// set (github.com/joho/godotenv). Decode fills a tagged struct
// (github.com/joeshaw/envdecode):
//
//	type Config struct {
//		Addr    string        `env:"APP_ADDR,default=:8080"`
//		Timeout time.Duration `env:"APP_TIMEOUT,default=5s"`
//		DSN     string        `env:"DATABASE_URL,required"`
//	}
package env
