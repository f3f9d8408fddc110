// Package mypubsub carries the checkout events between services: the flow
// controller publishes on the checkout topic, the partner service subscribes
// with a push endpoint.
package mypubsub

import "context"

//go:generate mockgen -source=pubsub_api.go -package mypubsub -destination pubsub_mock.go PubSub
type PubSub interface {
	Publish(c context.Context, topic string, data string) error
	CreateTopic(c context.Context, topic string) error
	// Subscribe registers urlToPostTo as the push target for the topic.
	Subscribe(c context.Context, topic string, urlToPostTo string) error
}

// New is bound at init time to the implementation matching the environment.
var New func(c context.Context) (PubSub, func(), error)
