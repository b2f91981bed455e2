package database

import (
	"database/sql"
	"fmt"
	"time"

	"go-clinic-management/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// NewSIMRSConnection opens a pool against the hospital information system
// database. parseTime is required so DATE columns scan into time.Time.
func NewSIMRSConnection(cfg config.SIMRSDBConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=Asia%%2FJakarta",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SIMRS database: %w", err)
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SIMRS database: %w", err)
	}

	logrus.Info("Successfully connected to SIMRS MySQL database")

	return db, nil
}
