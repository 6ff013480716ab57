//go:build integration

// Package testutil starts a throwaway PostgreSQL for integration tests.
package testutil

import (
	"context"
	"fmt"
	"time"

	"store-rating/pkg/database"
	"store-rating/pkg/utils"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Postgres is a migrated database running in a container.
type Postgres struct {
	Config    utils.DatabaseConfig
	container tc.Container
}

func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "store_rating_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	pg := &Postgres{
		Config: utils.DatabaseConfig{
			Host:     host,
			Port:     port.Port(),
			Name:     "store_rating_test",
			User:     "postgres",
			Password: "password",
			SSLMode:  "disable",
			MaxConns: 10,
		},
		container: container,
	}

	if err := database.Migrate(ctx, pg.Config.DSN()); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	return pg, nil
}

// Connect opens a pool against the migrated database.
func (p *Postgres) Connect() (database.PgxIface, error) {
	return database.InitDB(p.Config)
}

// Truncate empties every table between tests.
func Truncate(ctx context.Context, db database.Querier) error {
	_, err := db.Exec(ctx, `TRUNCATE ratings, stores, users`)
	return err
}

func (p *Postgres) Terminate(ctx context.Context) error {
	return p.container.Terminate(ctx)
}
