// Package notifier publishes project lifecycle events to NATS. Publication is
// best-effort: the pipeline never fails because an event couldn't be sent.
package notifier

import (
	"time"

	"github.com/cloudspace/csp/logging"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger().WithFields(logrus.Fields{"package": "notifier"})

const projectCreatedSubject = "cloudspace.project.created"

// ProjectCreatedEvent announces a newly provisioned cloud space.
type ProjectCreatedEvent struct {
	Name          string    `json:"name"`
	ProjectURL    string    `json:"project_url"`
	Configuration string    `json:"configuration"`
	Price         int       `json:"price"`
	CreatedAt     time.Time `json:"created_at"`
}

// Notifier publishes events over an encoded NATS connection. A nil Notifier
// is valid and publishes nothing, which is how deployments without a NATS
// cluster run.
type Notifier struct {
	conn *nats.EncodedConn
}

// Connect establishes the NATS connection for event publication.
func Connect(cluster string) (*Notifier, error) {
	wrapMsg := "unable to connect to NATS"

	nc, err := nats.Connect(
		cluster,
		nats.RetryOnFailedConnect(true),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Errorf("disconnected from nats: %s", err.Error())
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infof("reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	conn, err := nats.NewEncodedConn(nc, nats.JSON_ENCODER)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	log.Infof("connected to NATS host: %s", nc.ConnectedServerName())

	return &Notifier{conn: conn}, nil
}

// ProjectCreated publishes a project creation event.
func (n *Notifier) ProjectCreated(event *ProjectCreatedEvent) error {
	if n == nil || n.conn == nil {
		return nil
	}
	if err := n.conn.Publish(projectCreatedSubject, event); err != nil {
		return errors.Wrap(err, "unable to publish the project creation event")
	}
	return nil
}
