package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/sarilacivert/matchcenter-service/errs"
	"github.com/sarilacivert/matchcenter-service/repository"
	"github.com/sarilacivert/matchcenter-service/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("matchcenter"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	connectionString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connectionString), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	require.NoError(t, err)

	m, err := migrate.NewWithDatabaseInstance("file://../database/migrations", "matchcenter", driver)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	return db
}

func TestMatchSummaryRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	r := repository.NewMatchSummaryRepository(db)

	t.Run("it returns a not ready error for an unknown match", func(t *testing.T) {
		_, err := r.One(ctx, "999999")

		assert.ErrorAs(t, err, &errs.SummaryNotReadyError{})
	})

	t.Run("it saves and reads back a summary", func(t *testing.T) {
		saved, err := r.Save(ctx, repository.MatchSummary{
			MatchID:    "730900",
			League:     "tur.1",
			MatchState: "post",
			Source:     "live-post",
			Payload:    []byte(`{"matchId":"730900"}`),
			UpdatedAt:  time.Now().UTC().Truncate(time.Second),
		})
		require.NoError(t, err)

		found, err := r.One(ctx, saved.MatchID)

		require.NoError(t, err)
		assert.Equal(t, "post", found.MatchState)
		assert.Equal(t, "live-post", found.Source)
		assert.JSONEq(t, `{"matchId":"730900"}`, string(found.Payload))
	})

	t.Run("a second save of the same match replaces the stored row", func(t *testing.T) {
		first := repository.MatchSummary{
			MatchID:    "730901",
			League:     "tur.1",
			MatchState: "post",
			Source:     "live-post",
			Payload:    []byte(`{"source":"live"}`),
			UpdatedAt:  time.Now().UTC().Truncate(time.Second),
		}
		_, err := r.Save(ctx, first)
		require.NoError(t, err)

		first.Source = "espn-summary"
		first.Payload = []byte(`{"source":"espn"}`)
		_, err = r.Save(ctx, first)
		require.NoError(t, err)

		found, err := r.One(ctx, first.MatchID)

		require.NoError(t, err)
		assert.Equal(t, "espn-summary", found.Source)
		assert.JSONEq(t, `{"source":"espn"}`, string(found.Payload))
	})
}

func TestFixtureRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	r := repository.NewFixtureRepository(db)

	now := time.Now().UTC().Truncate(time.Second)

	later := testutils.FakeRepositoryFixture(func(f *repository.Fixture) {
		f.ID = "2"
		f.StartsAt = now.Add(48 * time.Hour)
		f.UpdatedAt = now
	})
	sooner := testutils.FakeRepositoryFixture(func(f *repository.Fixture) {
		f.ID = "1"
		f.StartsAt = now.Add(24 * time.Hour)
		f.UpdatedAt = now
	})

	t.Run("it lists stored fixtures ordered by kickoff time", func(t *testing.T) {
		require.NoError(t, r.SaveAll(ctx, []repository.Fixture{later, sooner}))

		fixtures, err := r.List(ctx)

		require.NoError(t, err)
		require.Len(t, fixtures, 2)
		assert.Equal(t, sooner.ID, fixtures[0].ID)
		assert.Equal(t, later.ID, fixtures[1].ID)
	})

	t.Run("a second save updates existing fixtures in place", func(t *testing.T) {
		finished := sooner
		finished.State = "post"
		finished.Completed = true

		require.NoError(t, r.SaveAll(ctx, []repository.Fixture{finished}))

		fixtures, err := r.List(ctx)

		require.NoError(t, err)
		require.Len(t, fixtures, 2)
		assert.Equal(t, "post", fixtures[0].State)
		assert.True(t, fixtures[0].Completed)
	})

	t.Run("saving an empty slice is a no-op", func(t *testing.T) {
		assert.NoError(t, r.SaveAll(ctx, nil))
	})
}

func TestPlayerRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	r := repository.NewPlayerRepository(db)

	now := time.Now().UTC().Truncate(time.Second)

	keeper := testutils.FakeRepositoryPlayer(func(p *repository.Player) {
		p.ID = "10"
		p.Number = 1
		p.UpdatedAt = now
	})
	striker := testutils.FakeRepositoryPlayer(func(p *repository.Player) {
		p.ID = "20"
		p.Number = 9
		p.UpdatedAt = now
	})

	t.Run("it lists the squad ordered by shirt number", func(t *testing.T) {
		require.NoError(t, r.SaveAll(ctx, []repository.Player{striker, keeper}))

		players, err := r.List(ctx)

		require.NoError(t, err)
		require.Len(t, players, 2)
		assert.Equal(t, keeper.ID, players[0].ID)
		assert.Equal(t, striker.ID, players[1].ID)
	})
}

func TestSubscriptionRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	r := repository.NewSubscriptionRepository(db)

	now := time.Now().UTC().Truncate(time.Second)

	t.Run("it creates and lists subscriptions", func(t *testing.T) {
		first, err := r.Create(ctx, repository.Subscription{Token: "token-a", CreatedAt: now})
		require.NoError(t, err)
		assert.NotZero(t, first.ID)

		_, err = r.Create(ctx, repository.Subscription{Token: "token-b", CreatedAt: now})
		require.NoError(t, err)

		subscriptions, err := r.List(ctx)

		require.NoError(t, err)
		assert.Len(t, subscriptions, 2)
	})

	t.Run("a duplicate token is rejected with a typed error", func(t *testing.T) {
		_, err := r.Create(ctx, repository.Subscription{Token: "token-a", CreatedAt: now})

		assert.ErrorAs(t, err, &errs.SubscriptionAlreadyExistsError{})
	})

	t.Run("it deletes a subscription by token", func(t *testing.T) {
		require.NoError(t, r.Delete(ctx, "token-b"))

		_, err := r.One(ctx, "token-b")

		assert.ErrorAs(t, err, &errs.SubscriptionNotFoundError{})
	})

	t.Run("deleting an unknown token returns a typed error", func(t *testing.T) {
		err := r.Delete(ctx, "token-unknown")

		assert.ErrorAs(t, err, &errs.SubscriptionNotFoundError{})
	})
}

func TestStandingsRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	r := repository.NewStandingsRepository(sqlx.NewDb(sqlDB, "pgx"))

	now := time.Now().UTC().Truncate(time.Second)

	row := func(rank int, teamID string, points int) repository.StandingRow {
		return repository.StandingRow{
			League:    "tur.1",
			Rank:      rank,
			TeamID:    teamID,
			TeamName:  "Team " + teamID,
			Played:    30,
			Won:       points / 3,
			Points:    points,
			UpdatedAt: now,
		}
	}

	t.Run("it stores and lists the table ordered by rank", func(t *testing.T) {
		err := r.ReplaceAll(ctx, "tur.1", []repository.StandingRow{
			row(2, "998", 78),
			row(1, "432", 84),
		})
		require.NoError(t, err)

		rows, err := r.List(ctx, "tur.1")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "432", rows[0].TeamID)
		assert.Equal(t, "998", rows[1].TeamID)
	})

	t.Run("a replace swaps the whole league table", func(t *testing.T) {
		err := r.ReplaceAll(ctx, "tur.1", []repository.StandingRow{row(1, "111", 90)})
		require.NoError(t, err)

		rows, err := r.List(ctx, "tur.1")

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "111", rows[0].TeamID)
	})

	t.Run("a replace does not touch other leagues", func(t *testing.T) {
		other := row(1, "500", 70)
		other.League = "tur.2"
		require.NoError(t, r.ReplaceAll(ctx, "tur.2", []repository.StandingRow{other}))

		require.NoError(t, r.ReplaceAll(ctx, "tur.1", []repository.StandingRow{row(1, "111", 90)}))

		rows, err := r.List(ctx, "tur.2")

		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}
