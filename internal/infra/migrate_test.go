package infra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/infra"
	"tripplanner/internal/infra/infratest"
)

func TestMigrationsCreateSchema(t *testing.T) {
	db := infratest.OpenTestDB(t)

	for _, table := range []string{
		"accounts", "travel_groups", "group_members", "places", "cities", "activities",
		"trips", "itineraries", "trip_days", "trip_day_cities", "trip_day_places", "trip_day_activities",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// applying again is a no-op
	require.NoError(t, infra.RunMigrations(context.Background(), db))
}

func TestTripDateRangeCheck(t *testing.T) {
	db := infratest.OpenTestDB(t)

	require.NoError(t, db.Exec(
		`INSERT INTO accounts (id, created_at, updated_at, email, password_hash) VALUES (?, 1, 1, 'a@b.c', 'x')`,
		"00000000-0000-0000-0000-000000000001").Error)

	err := db.Exec(
		`INSERT INTO trips (id, created_at, updated_at, owner_id, title, start_date) VALUES (?, 1, 1, ?, 't', '2025-01-01 00:00:00')`,
		"00000000-0000-0000-0000-000000000002", "00000000-0000-0000-0000-000000000001").Error
	assert.Error(t, err)
}
