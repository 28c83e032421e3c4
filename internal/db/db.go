package db

import (
	"database/sql"

	"github.com/cloudspace/csp/logging"
	"github.com/cyverse-de/dbutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var log = logging.GetLogger().WithFields(logrus.Fields{"package": "db"})

// Init establishes the database connection pool and wraps it with GORM.
func Init(driverName, databaseURI string) (*sql.DB, *gorm.DB, error) {
	wrapMsg := "unable to initialize the database"

	// Establish the connection pool.
	connector, err := dbutil.NewDefaultConnector("1m")
	if err != nil {
		return nil, nil, errors.Wrap(err, wrapMsg)
	}
	conn, err := connector.Connect(driverName, databaseURI)
	if err != nil {
		return nil, nil, errors.Wrap(err, wrapMsg)
	}

	log.Info("connected to the database")

	// Wrap the connection pool with GORM.
	gormdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}))
	if err != nil {
		return nil, nil, errors.Wrap(err, wrapMsg)
	}

	if err = gormdb.Use(otelgorm.NewPlugin()); err != nil {
		return nil, nil, errors.Wrap(err, wrapMsg)
	}

	return conn, gormdb, nil
}
