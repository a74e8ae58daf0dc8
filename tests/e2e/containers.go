//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

// Containers are shared by every suite in the test binary; each suite gets its
// own database. Ryuk reaps them when the binary exits.
var (
	containersOnce sync.Once
	shared         struct {
		postgres  *tcpostgres.PostgresContainer
		redis     testcontainers.Container
		pgHost    string
		pgPort    string
		redisAddr string
	}
)

type endpoints struct {
	PGHost    string
	PGPort    string
	RedisAddr string
}

func startContainers(t *testing.T) endpoints {
	t.Helper()

	containersOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pg, err := tcpostgres.Run(ctx,
			"postgres:17-alpine",
			tcpostgres.WithDatabase("postgres"),
			tcpostgres.WithUsername(pgUser),
			tcpostgres.WithPassword(pgPassword),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		require.NoError(t, err, "failed to start postgres container")
		shared.postgres = pg

		host, err := pg.Host(ctx)
		require.NoError(t, err)
		port, err := pg.MappedPort(ctx, "5432/tcp")
		require.NoError(t, err)
		shared.pgHost, shared.pgPort = host, port.Port()

		rc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
				Labels:       map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
		require.NoError(t, err, "failed to start redis container")
		shared.redis = rc

		redisHost, err := rc.Host(ctx)
		require.NoError(t, err)
		redisPort, err := rc.MappedPort(ctx, "6379/tcp")
		require.NoError(t, err)
		shared.redisAddr = net.JoinHostPort(redisHost, redisPort.Port())

		slog.Info("e2e containers started",
			"postgres", net.JoinHostPort(shared.pgHost, shared.pgPort),
			"redis", shared.redisAddr)
	})

	require.NotNil(t, shared.postgres, "postgres container unavailable")
	return endpoints{PGHost: shared.pgHost, PGPort: shared.pgPort, RedisAddr: shared.redisAddr}
}
