package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"lodgehub/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	roleRead  = "read"
	roleWrite = "write"
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  Connect(cfg, roleRead, cfg.DB.Postgres.Read),
		Write: Connect(cfg, roleWrite, cfg.DB.Postgres.Write),
	}
}

// DBName applies the optional per-environment prefix.
func DBName(cfg *config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DSN builds a postgres URL for one endpoint. The session time zone follows
// the endpoint so DATE columns and day buckets line up with the lodge's clock.
func DSN(cfg *config.Config, endpoint config.PostgresEndpoint, extra url.Values) string {
	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range extra {
		for _, v := range values {
			query.Add(key, v)
		}
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + DBName(cfg, endpoint.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Connect opens a pool for the endpoint, retrying MaxRetry times. It returns
// nil when every attempt fails.
func Connect(cfg *config.Config, role string, endpoint config.PostgresEndpoint) *sqlx.DB {
	pg := cfg.DB.Postgres
	dsn := DSN(cfg, endpoint, nil)

	logger := log.With().
		Str("role", role).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", DBName(cfg, endpoint.Name)).
		Logger()

	for attempt := range pg.MaxRetry {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxMinutes) * time.Minute)

			logger.Info().Int("maxOpen", pg.MaxOpenConns).Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Error().Int("maxRetry", pg.MaxRetry).Msg("Giving up connecting to database")

	return nil
}
