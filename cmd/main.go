package main

import (
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/app"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	logger := setUpLogger(configuration)

	// Open the store and build the application context
	application, err := app.Bootstrap(configuration, logger)
	checkPanicErr(err)

	// Start the server
	if err := application.Run(); err != nil {
		application.Close()
		logger.WithError(err).Fatal("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger builds the application logger with a JSON formatter.
// LOG_LEVEL wins over the level derived from APP_ENV.
func setUpLogger(conf *config.Config) *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		logger.WithField("log_level", conf.LogLevel).Warn("Unknown log level, falling back to environment default")
		level = config.LevelForEnvironment(conf.Environment)
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}
