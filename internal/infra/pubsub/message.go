package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"recipebox/internal/domain/entity"

	"github.com/pkg/errors"
)

// PushMessage is the body Pub/Sub sends to push endpoints.
// The local publisher produces the same shape so the worker cannot tell them apart.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// AccountEvent decodes the base64 JSON payload of the message.
// A missing request ID is taken from the message attributes.
func (m *PushMessage) AccountEvent() (*entity.AccountEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event entity.AccountEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse account event")
	}
	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes["request_id"]
	}
	if event.EventID == "" {
		event.EventID = m.Message.MessageID
	}

	return &event, nil
}

// eventAttributes are the message attributes used for subscription filters and tracing.
func eventAttributes(event *entity.AccountEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"uid":        event.UID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
