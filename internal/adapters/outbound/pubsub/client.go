package pubsub

import (
	"context"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/sirupsen/logrus"
)

// InitClient registers a Pub/Sub client when a project is configured.
// PUBSUB_EMULATOR_HOST is honoured by the client library.
type InitClient struct {
	Logger    *logrus.Logger `resolve:""`
	ProjectID string         `config:"PUBSUB_PROJECT_ID" default:"-"`
	client    *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		if i.ProjectID == "-" {
			i.Logger.Info("PubSub: no project configured, event delivery disabled")
			return ctx, nil
		}
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Errorf("PubSub: failed to close pubsub client: %v", err)
	}
}
