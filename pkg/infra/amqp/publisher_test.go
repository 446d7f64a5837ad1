package amqp_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/infra/amqp"
	"github.com/m-mizutani/gittales/pkg/utils/safe"
	"github.com/m-mizutani/gittales/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
	amqplib "github.com/rabbitmq/amqp091-go"
)

func TestPublisher(t *testing.T) {
	url := testutil.GetEnvOrSkip(t, "TEST_AMQP_URL")
	queue := "gittales-test-" + uuid.NewString()[:8]
	ctx := context.Background()

	pub := gt.R1(amqp.New(url, queue)).NoError(t)
	defer safe.Close(pub)

	event := &model.CommitsPushedEvent{
		RepoID:    1,
		GitRepoID: 42,
		RepoName:  "foo",
		Branch:    "main",
		SHAs:      []types.CommitSHA{"abc123"},
		Messages:  []string{"fix"},
		PushedAt:  time.Now().UTC().Truncate(time.Second),
	}
	gt.NoError(t, pub.PublishCommitsPushed(ctx, event))

	conn := gt.R1(amqplib.Dial(url)).NoError(t)
	defer safe.Close(conn)
	ch := gt.R1(conn.Channel()).NoError(t)
	defer safe.Close(ch)

	var msg amqplib.Delivery
	var ok bool
	for i := 0; i < 20 && !ok; i++ {
		msg, ok, _ = ch.Get(queue, true)
		if !ok {
			time.Sleep(100 * time.Millisecond)
		}
	}
	gt.True(t, ok)
	gt.V(t, msg.ContentType).Equal("application/json")

	var got model.CommitsPushedEvent
	gt.NoError(t, json.Unmarshal(msg.Body, &got))
	gt.V(t, got.RepoName).Equal("foo")
	gt.V(t, got.SHAs).Equal([]types.CommitSHA{"abc123"})

	_, err := ch.QueueDelete(queue, false, false, false)
	gt.NoError(t, err)
}
