package payflow

import (
	"os"

	"github.com/joho/godotenv"
)

// Config collects everything the pipeline's collaborators need at
// construction time. The gateway key lives here instead of in any
// package-level variable.
type Config struct {
	GatewayAPIKey  string
	GatewayBaseURL string
	LogPath        string
	EmailFrom      string
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one is present. An empty STRIPE_API_KEY is not an error here:
// the gateway rejects the first charge with an authentication failure, which
// is where the problem belongs.
func LoadConfig() Config {
	// A missing .env file just means the environment is already set.
	_ = godotenv.Load()

	return Config{
		GatewayAPIKey:  os.Getenv("STRIPE_API_KEY"),
		GatewayBaseURL: os.Getenv("STRIPE_BASE_URL"),
		LogPath:        os.Getenv("TRANSACTION_LOG_PATH"),
		EmailFrom:      os.Getenv("EMAIL_FROM"),
	}
}
