package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/thrishank/jup-ag-sdk/internal/models"
)

// PubSubManager fans out price refreshes to interested subscribers.
type PubSubManager struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewPubSubManager(addr string, logger *logrus.Logger) *PubSubManager {
	if logger == nil {
		logger = logrus.New()
	}
	return &PubSubManager{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   0,
		}),
		logger: logger,
	}
}

// PublishPrice publishes a price update to the global and per-mint channels.
func (p *PubSubManager) PublishPrice(ctx context.Context, update models.PriceUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}

	channels := []string{
		"prices:all",
		fmt.Sprintf("prices:mint:%s", update.Mint),
	}

	pipe := p.client.Pipeline()
	for _, channel := range channels {
		pipe.Publish(ctx, channel, data)
	}

	_, err = pipe.Exec(ctx)
	return err
}

// Subscribe consumes price updates from a channel until the channel closes.
func (p *PubSubManager) Subscribe(ctx context.Context, channel string, handler func(models.PriceUpdate)) error {
	pubsub := p.client.Subscribe(ctx, channel)
	defer pubsub.Close()

	p.logger.WithField("channel", channel).Info("subscribed to price updates")

	ch := pubsub.Channel()
	for msg := range ch {
		var update models.PriceUpdate
		if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
			p.logger.WithError(err).Warn("skipping malformed price update")
			continue
		}
		handler(update)
	}

	return nil
}

func (p *PubSubManager) Close() error {
	return p.client.Close()
}
