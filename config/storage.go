package config

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"frontdesk/storage"
	"frontdesk/utils"
)

// ConnectStorage picks the persistence substrate from STORAGE_DRIVER:
// sqlite (default, single-device local file), mysql, redis, or memory.
// Whatever the substrate, the repositories see the same key-value port.
func ConnectStorage() (storage.Store, error) {
	driver := strings.ToLower(utils.EnvOrDefault("STORAGE_DRIVER", "sqlite"))

	switch driver {
	case "sqlite":
		dsn := utils.EnvOrDefault("SQLITE_PATH", "frontdesk.db")
		log.Printf("Using SQLite storage at %s", dsn)
		db, err := openGorm(gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}))
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)

	case "mysql":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		log.Println("Using MySQL storage")
		db, err := openGorm(mysql.Open(dsn))
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     utils.EnvOrDefault("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to ping Redis: %w", err)
		}
		log.Println("Using Redis storage")
		return storage.NewRedisStore(client), nil

	case "memory":
		log.Println("⚠️  Using in-memory storage; data will not survive a restart")
		return storage.NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
}

func openGorm(dialector gorm.Dialector) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)
	return gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "frontdesk")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}
