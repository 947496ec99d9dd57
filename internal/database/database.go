package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/bhawani/internal/config"
	"github.com/example/bhawani/internal/models"
)

// Connect opens the connection pool described by cfg. The caller owns the
// returned handle and must Close it on shutdown.
func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := withConnectTimeout(cfg.DatabaseURL, cfg.DBConnectTimeout)

	if cfg.DBAutoMigrate {
		if err := ensureDatabase(dsn); err != nil {
			return nil, fmt.Errorf("ensure database: %w", err)
		}
	}

	logLevel := logger.Warn
	if !cfg.IsProduction() {
		logLevel = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns)
	sqlDB.SetConnMaxIdleTime(cfg.DBIdleTimeout)

	if cfg.DBAutoMigrate {
		if err := migrate(conn); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
		log.Info("database migrated")
	}

	return conn, nil
}

// Close releases every pooled connection.
func Close(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that a connection can be acquired within the context deadline.
func Ping(ctx context.Context, conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func migrate(conn *gorm.DB) error {
	migrations := []interface{}{
		&models.HeroContent{},
		&models.AboutUsContent{},
		&models.AboutStatistic{},
		&models.ServicesContent{},
		&models.Service{},
		&models.FeaturedProject{},
		&models.Client{},
		&models.Testimonial{},
		&models.ContactContent{},
		&models.ContactDetail{},
		&models.WorkingHours{},
		&models.FooterContent{},
		&models.SocialLink{},
		&models.ContactMessage{},
	}

	for _, migration := range migrations {
		if err := conn.AutoMigrate(migration); err != nil {
			return err
		}
	}

	return nil
}

// withConnectTimeout appends connect_timeout to URL-style DSNs that do not set one.
func withConnectTimeout(dsn string, timeout time.Duration) string {
	if timeout <= 0 || !isURLDSN(dsn) {
		return dsn
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return dsn
	}

	query := parsed.Query()
	if query.Get("connect_timeout") != "" {
		return dsn
	}
	seconds := int(timeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	query.Set("connect_timeout", strconv.Itoa(seconds))
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func isURLDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func ensureDatabase(dsn string) error {
	if !isURLDSN(dsn) {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	masterDSN := parsed.String()

	sqlDB, err := sql.Open("postgres", masterDSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	var exists bool
	if err := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}
