package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"lodgehub/config"
	"lodgehub/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
	ActionForce   = "force"
)

var ErrUnknownAction = errors.New("unknown migration action")

// MigrationURL is the write endpoint DSN with the migrations table attached.
func MigrationURL(cfg *config.Config) string {
	extra := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		extra.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	return postgres.DSN(cfg, cfg.DB.Postgres.Write, extra)
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, MigrationURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	return err
}

// Runner applies one migration action. Force takes the target version as its
// only argument.
func Runner(cfg *config.Config, action string, args ...string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		if err := ignoreNoChange(mig.Up()); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}
	case ActionStepUp:
		if err := ignoreNoChange(mig.Steps(1)); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}
	case ActionDown:
		if err := ignoreNoChange(mig.Steps(-1)); err != nil {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}
	case ActionDrop:
		if err := ignoreNoChange(mig.Down()); err != nil {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}
	case ActionVersion:
		version, dirty, err := mig.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info().Msg("No migrations applied yet")

			return nil
		}

		if err != nil {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current migration version")

		return nil
	case ActionForce:
		version, err := ParseForceVersion(args)
		if err != nil {
			return err
		}

		if err := mig.Force(version); err != nil {
			return fmt.Errorf("error forcing migration version: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return nil
}

// ParseForceVersion reads the version argument of the force action. -1 clears
// the version table.
func ParseForceVersion(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("force requires a target version")
	}

	version, err := strconv.Atoi(args[0])
	if err != nil || version < -1 {
		return 0, fmt.Errorf("invalid force version %q", args[0])
	}

	return version, nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
