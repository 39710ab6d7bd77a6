package app

import (
	"context"
	"os"
	"strings"
	"time"

	"go-proyek/internal/material"
	"go-proyek/internal/messaging/kafka/producer"
	"go-proyek/internal/project"
	"go-proyek/internal/shared/connection"
	"go-proyek/internal/state"
	"go-proyek/internal/storage"
	"go-proyek/internal/store"
	"go-proyek/internal/sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	if err := storage.Migrate(db); err != nil {
		return err
	}

	// Redis opsional: hanya dipakai middleware idempotency
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	}

	// Kafka opsional: tanpa broker, event lifecycle jadi no-op
	var pub producer.Publisher = producer.Noop{}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		pub = producer.NewPublisher(strings.Split(brokers, ","))
	}

	// 2. Snapshot store: muat dari DB, lalu migrasi bucket material
	// legacy yang masih ter-key project id
	repo := storage.NewSnapshotRepository(db)
	st := store.New(repo, zap.L())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	found, err := st.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		// Boot pertama: mulai dengan satu proyek berperiode minggu berjalan,
		// bukan state kosong tanpa tempat mencatat apa pun
		now := time.Now()
		_, err := project.NewService(st).Create(ctx, project.CreateProjectRequest{
			Name:      "PROYEK PERTAMA",
			StartDate: now.Format("2006-01-02"),
			EndDate:   now.AddDate(0, 0, 6).Format("2006-01-02"),
		})
		if err != nil {
			return err
		}
	}
	if _, err := st.Apply(ctx, func(s *state.AppState) error {
		material.MigrateLegacyAll(s)
		return nil
	}); err != nil {
		return err
	}

	// 3. Remote sync
	remoteURL := os.Getenv("SYNC_REMOTE_URL")
	if remoteURL == "" {
		remoteURL = sync.DefaultJSONBlobURL
	}
	syncer := sync.NewSyncer(st, sync.NewJSONBlobClient(remoteURL), time.Second, pub)
	if err := syncer.Start(ctx); err != nil {
		return err
	}

	// 4. Register Modules & Routes
	return registerModules(router, st, syncer, pub, rdb)
}
