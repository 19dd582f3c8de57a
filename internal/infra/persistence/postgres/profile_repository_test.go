package postgres

import (
	"context"
	"testing"
	"time"

	"unifeast/internal/domain/entity"
	"unifeast/internal/domain/repository"
	"unifeast/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// setupTestDB starts a disposable PostgreSQL and returns a migrated client for it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("starts a PostgreSQL container")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "unifeast",
			"POSTGRES_USER":     "unifeast",
			"POSTGRES_PASSWORD": "unifeast",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(3 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := pgLib.New(&pgLib.DBConn{
		Master: pgLib.ConnectionConfig{
			Host:     host,
			Port:     port.Port(),
			UserName: "unifeast",
			Password: "unifeast",
		},
		Database: "unifeast",
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for range 10 {
		if err = sqlDB.PingContext(ctx); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "PostgreSQL did not accept connections")

	require.NoError(t, db.WithContext(ctx).AutoMigrate(&model.ProfileModel{}))

	return db
}

func seededProfile(id string) *entity.Profile {
	profile := entity.NewProfile(id, id+"@campus.ac.uk")
	profile.DisplayName = "Ada"
	profile.IdentityTier = entity.IdentityTierVisitor
	profile.DietaryPreferences = entity.NewDietaryPreferences(entity.DietaryVegan, entity.DietaryHalal)
	profile.PeriodPlan = "term-1"
	profile.CoreAllergens.Milk = true
	profile.OtherAllergens = []string{"Celery", "Gluten"}

	return profile
}

// userVisible drops the backend-assigned timestamps.
func userVisible(profile *entity.Profile) entity.Profile {
	visible := *profile
	visible.CreatedAt = time.Time{}
	visible.UpdatedAt = time.Time{}

	return visible
}

func TestProfileRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		profile := seededProfile("round-trip")
		profile.SessionData = "cart=3"

		created, err := repo.Create(ctx, profile)
		require.NoError(t, err)
		assert.False(t, created.CreatedAt.IsZero())

		found, err := repo.FindByID(ctx, "round-trip")
		require.NoError(t, err)
		assert.Equal(t, created, found)

		want := userVisible(profile)
		want.SessionData = ""
		assert.Equal(t, want, userVisible(found))
	})

	t.Run("create twice keeps the first record", func(t *testing.T) {
		_, err := repo.Create(ctx, seededProfile("create-twice"))
		require.NoError(t, err)

		second := entity.NewProfile("create-twice", "other@campus.ac.uk")
		_, err = repo.Create(ctx, second)
		assert.ErrorIs(t, err, repository.ErrProfileAlreadyExists)

		found, err := repo.FindByID(ctx, "create-twice")
		require.NoError(t, err)
		assert.Equal(t, "Ada", found.DisplayName)
		assert.Equal(t, "create-twice@campus.ac.uk", found.Email)
	})

	t.Run("partial update leaves other columns unchanged", func(t *testing.T) {
		before, err := repo.Create(ctx, seededProfile("partial"))
		require.NoError(t, err)

		peanuts := true
		updated, err := repo.Update(ctx, "partial", &entity.ProfilePatch{Peanuts: &peanuts})
		require.NoError(t, err)

		want := userVisible(before)
		want.CoreAllergens.Peanuts = true
		assert.Equal(t, want, userVisible(updated))
		assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))

		found, err := repo.FindByID(ctx, "partial")
		require.NoError(t, err)
		assert.Equal(t, updated, found)
	})

	t.Run("same update twice is idempotent", func(t *testing.T) {
		_, err := repo.Create(ctx, seededProfile("idempotent"))
		require.NoError(t, err)

		tier := entity.IdentityTierStaff
		others := []string{" Sesame", "Mustard", ""}
		patch := &entity.ProfilePatch{IdentityTier: &tier, OtherAllergens: &others}

		first, err := repo.Update(ctx, "idempotent", patch)
		require.NoError(t, err)
		second, err := repo.Update(ctx, "idempotent", patch)
		require.NoError(t, err)

		assert.Equal(t, userVisible(first), userVisible(second))
		assert.Equal(t, []string{"Sesame", "Mustard"}, second.OtherAllergens)
	})

	t.Run("update of a missing id", func(t *testing.T) {
		eggs := true
		_, err := repo.Update(ctx, "missing", &entity.ProfilePatch{Eggs: &eggs})

		assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	})

	t.Run("find of a missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := repo.Create(ctx, seededProfile("delete"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, "delete"))
		require.NoError(t, repo.Delete(ctx, "delete"))

		_, err = repo.FindByID(ctx, "delete")
		assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	})
}
