package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultQueue = "commits.pushed"

// Publisher sends push events to a durable queue on the default exchange
type Publisher struct {
	conn  *amqp.Connection
	queue string

	// amqp.Channel must not be used concurrently
	mu sync.Mutex
	ch *amqp.Channel
}

var _ interfaces.EventPublisher = (*Publisher)(nil)

func New(url, queue string) (*Publisher, error) {
	if queue == "" {
		queue = DefaultQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to connect AMQP broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, goerr.Wrap(err, "failed to open AMQP channel")
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, goerr.Wrap(err, "failed to declare queue", goerr.V("queue", queue))
	}

	return &Publisher{conn: conn, ch: ch, queue: queue}, nil
}

func (x *Publisher) Close() error {
	return errors.Join(x.ch.Close(), x.conn.Close())
}

func (x *Publisher) PublishCommitsPushed(ctx context.Context, event *model.CommitsPushedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal event")
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    logging.CtxTime(ctx).UTC(),
		Type:         DefaultQueue,
		Body:         body,
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if err := x.ch.PublishWithContext(ctx, "", x.queue, false, false, msg); err != nil {
		return goerr.Wrap(err, "failed to publish event",
			goerr.V("queue", x.queue),
			goerr.V("repo_id", event.RepoID),
		)
	}

	return nil
}
