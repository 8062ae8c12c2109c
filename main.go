package main

import (
	"context"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/finance-assistant/backend/internal/assistant"
	"github.com/finance-assistant/backend/internal/controllers/healthz"
	v1 "github.com/finance-assistant/backend/internal/controllers/v1"
	"github.com/finance-assistant/backend/internal/identity"
	"github.com/finance-assistant/backend/internal/models"
	"github.com/finance-assistant/backend/internal/routing"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load a .env file if one exists, the environment takes precedence
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// An in-memory database keeps all data for the lifetime of the
	// process, which matches how the app is used. Set DB_DSN to a file
	// path for persistence across restarts.
	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dsn = ":memory:"
	}

	// Connect to the database
	err := models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Load the demo data when the database is empty
	err = models.Seed()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg("environment variable API_URL must be a valid URL")
	}

	// The user session starts signed in when USER_NAME is set
	userSession := identity.NewSession()
	if name, ok := os.LookupEnv("USER_NAME"); ok {
		userSession.Init(identity.Profile{
			Name:    name,
			Email:   os.Getenv("USER_EMAIL"),
			Picture: os.Getenv("USER_PICTURE"),
		})
	}
	routing.RegisterIdentity(userSession)

	// The assistant gateway defaults to the local development server
	gatewayURL, ok := os.LookupEnv("ASSISTANT_URL")
	if !ok {
		gatewayURL = "http://localhost:5000"
	}

	gateway := assistant.NewClient(gatewayURL, log.Logger)
	session := assistant.NewSession(gateway, log.Logger)
	v1.RegisterChatSession(session)
	healthz.RegisterSession(session)

	// Probe the gateway in the background, a slow or dead gateway
	// must not delay startup
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		status := session.CheckGateway(ctx)
		log.Info().Str("status", string(status)).Msg("Assistant gateway")
	}()

	r, teardown, err := routing.Config(url)
	defer teardown()

	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	routing.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
