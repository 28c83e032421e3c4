package server

import (
	"fmt"

	"github.com/cloudspace/csp/config"
	"github.com/cloudspace/csp/internal/controllers"
	"github.com/cloudspace/csp/internal/db"
	"github.com/cloudspace/csp/internal/identity"
	"github.com/cloudspace/csp/internal/notifier"
	"github.com/cloudspace/csp/internal/policy"
	"github.com/cloudspace/csp/internal/provision"
	"github.com/cloudspace/csp/logging"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger().WithFields(logrus.Fields{"package": "server"})

func Init(spec *config.Specification) {
	log := log.WithFields(logrus.Fields{"context": "server init"})

	e := InitRouter()

	// Establish the database connection.
	log.Info("establishing the database connection")
	conn, gormdb, err := db.Init("postgres", spec.DatabaseURI)
	if err != nil {
		log.Fatalf("service initialization failed: %s", err.Error())
	}

	// Connect to NATS when a cluster is configured. Event publication is
	// optional; without it the pipeline simply doesn't announce projects.
	var events *notifier.Notifier
	if spec.NatsCluster != "" {
		events, err = notifier.Connect(spec.NatsCluster)
		if err != nil {
			log.Fatalf("service initialization failed: %s", err.Error())
		}
	}

	s := controllers.Server{
		Router:       e,
		DB:           conn,
		GORMDB:       gormdb,
		Service:      "csp",
		Title:        "Cloud Space Provisioner",
		Version:      "1.0.0",
		Generator:    identity.NewGenerator(spec.UserDomain, spec.UserOUPath),
		Provisioner:  provision.NewInvoker(spec),
		Recorder:     &db.ProjectStore{DB: gormdb},
		PolicyIssuer: policy.NewIssuer(spec),
		Notifier:     events,
	}

	// Register the handlers.
	RegisterHandlers(s)

	log.Info("starting the service")
	log.Fatal(e.Start(fmt.Sprintf(":%d", spec.ListenPort)))
}
