package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/jellydator/validation"
	// loads a local .env file into the environment, if present
	_ "github.com/joho/godotenv/autoload"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey = "API_PORT"
	dbConnEnvKey  = "DB_CONNECTION_URL"
	dbNameEnvKey  = "DB_NAME"
)

type App struct {
	Port            string
	DBConnectionURL string
	DBName          string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	dbName, ok := os.LookupEnv(dbNameEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbNameEnvKey)
	}

	app := App{
		Port:            port,
		DBConnectionURL: dbConn,
		DBName:          dbName,
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.DBName, validation.Required),
	)
}
