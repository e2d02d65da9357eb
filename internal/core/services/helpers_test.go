package services

import (
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"palmtec-registry/internal/adapters/persistence/repositories/mocks"
	"palmtec-registry/internal/config"
	"palmtec-registry/internal/pkg/password"
)

const testSerial = "202505AMP123456B"

func init() {
	password.Cost = bcrypt.MinCost
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test_access_secret",
			RefreshSecret:    "test_refresh_secret",
			AccessTokenMins:  60,
			RefreshTokenDays: 7,
		},
		StockWatch: config.StockWatchConfig{
			Enabled:   true,
			Schedule:  "30 8 * * *",
			Threshold: 50,
		},
	}
}

type repoMocks struct {
	users   *mocks.MockUserRepository
	serials *mocks.MockSerialRepository
	procs   *mocks.MockProcedureRepository
}

func newRepoMocks(t *testing.T) repoMocks {
	ctrl := gomock.NewController(t)
	return repoMocks{
		users:   mocks.NewMockUserRepository(ctrl),
		serials: mocks.NewMockSerialRepository(ctrl),
		procs:   mocks.NewMockProcedureRepository(ctrl),
	}
}
