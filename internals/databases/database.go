package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"manrelbdg_backend/internals/configs"
)

func ConnectDB(cfg *configs.Config, log *zap.Logger) (*gorm.DB, error) {
	log.Info("🔌 Koneksi ke PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  withStatementTimeout(cfg.DatabaseURL, cfg.DBStatementTimeoutMS),
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), GormConfig(log, gormLogger.Warn))
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	log.Info("✅ DB connected.")
	return db, nil
}

// GormConfig dipakai bersama oleh koneksi utama dan database test.
// FK tidak dibuat saat migrate; integritas referensi dicek di layer aplikasi.
func GormConfig(log *zap.Logger, level gormLogger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:                                   configs.NewGormLogger(log, level),
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc:                                  func() time.Time { return time.Now().UTC() },
	}
}

func withStatementTimeout(dsn string, ms int) string {
	if ms <= 0 || strings.Contains(dsn, "statement_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sapplication_name=manrelbdg&options=-c%%20statement_timeout%%3D%d", dsn, sep, ms)
}

func TunePool(db *gorm.DB, cfg *configs.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	// ⚖️ Sesuaikan dengan limit PgBouncer
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

func WarmUpQueries(db *gorm.DB, log *zap.Logger) {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if _, err := Ping(ctx, db); err != nil {
			log.Warn("warm-up ping", zap.Error(err))
		}
	}()
}

// Ping mengembalikan lama round-trip ke database.
func Ping(ctx context.Context, db *gorm.DB) (time.Duration, error) {
	start := time.Now()
	sqlDB, err := db.DB()
	if err != nil {
		return 0, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return time.Since(start), err
	}
	return time.Since(start), nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
