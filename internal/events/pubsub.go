// Package events fans page-invalidation notices out over Pub/Sub so every
// instance drops its cached rendering after a reorder.
package events

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

const (
	TopicID = "invalidate-pages"
	SubID   = "invalidate-pages-sub"
)

func NewPublisher(ctx context.Context, projectID string, opts ...option.ClientOption) (*Publisher, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, err
	}

	topic, err := getOrCreateTopic(ctx, client, TopicID)
	if err != nil {
		return nil, err
	}

	return &Publisher{client: client, topic: topic}, nil
}

type Publisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// Invalidate publishes the logical page name and waits for the server ack.
func (p *Publisher) Invalidate(ctx context.Context, page string) error {
	res := p.topic.Publish(ctx, &pubsub.Message{Data: []byte(page)})
	if _, err := res.Get(ctx); err != nil {
		return fmt.Errorf("failed to publish invalidation for %q: %v", page, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.topic.Stop()
	return p.client.Close()
}

// Listen receives page-invalidation notices and hands each page name to fn,
// nacking the message when fn fails so delivery is retried.
func Listen(
	ctx context.Context,
	projectID string,
	topicID string,
	subID string,
	fn func(ctx context.Context, page string) error,
	opts ...option.ClientOption,
) error {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	topic, err := getOrCreateTopic(ctx, client, topicID)
	if err != nil {
		return err
	}

	sub, err := getOrCreateSub(ctx, client, subID, &pubsub.SubscriptionConfig{
		Topic:                     topic,
		EnableExactlyOnceDelivery: true,
	})
	if err != nil {
		return err
	}

	fmt.Println("invalidation listener started")
	return sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		if err := fn(ctx, string(msg.Data)); err != nil {
			fmt.Printf("invalidation failed: %v\n", err)
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

// getOrCreateTopic gets a topic or creates it if it doesn't exist.
func getOrCreateTopic(ctx context.Context, client *pubsub.Client, topicID string) (*pubsub.Topic, error) {
	topic := client.Topic(topicID)
	ok, err := topic.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check if topic exists: %v", err)
	}
	if !ok {
		topic, err = client.CreateTopic(ctx, topicID)
		if err != nil {
			return nil, fmt.Errorf("failed to create topic (%q): %v", topicID, err)
		}
	}
	return topic, nil
}

// getOrCreateSub gets a subscription or creates it if it doesn't exist.
func getOrCreateSub(ctx context.Context, client *pubsub.Client, subID string, cfg *pubsub.SubscriptionConfig) (*pubsub.Subscription, error) {
	sub := client.Subscription(subID)
	ok, err := sub.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check if subscription exists: %v", err)
	}
	if !ok {
		sub, err = client.CreateSubscription(ctx, subID, *cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create subscription (%q): %v", subID, err)
		}
	}
	return sub, nil
}
