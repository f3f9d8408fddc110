package mypublisher

import (
	"context"

	"github.com/MarcGrol/partnercheckout/lib/myevents"
)

//go:generate mockgen -source=publisher_api.go -package mypublisher -destination publisher_mock.go Publisher
type Publisher interface {
	Publish(c context.Context, topic string, event myevents.Event) error
	CreateTopic(c context.Context, topic string) error
}
