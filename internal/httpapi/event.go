package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/madzombie/spark-bot/internal/models"
)

// ErrMalformedEvent marks an inbound notification that does not carry the
// message and room ids. No remote calls are made for such events.
var ErrMalformedEvent = errors.New("malformed webhook event")

const eventSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["data"],
	"properties": {
		"data": {
			"type": "object",
			"required": ["id", "roomId"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"roomId": {"type": "string", "minLength": 1}
			}
		}
	}
}`

var compiledEventSchema = jsonschema.MustCompileString("webhook-event.json", eventSchema)

// ParseEvent validates the webhook envelope against the schema and decodes
// the two ids the pipeline needs.
func ParseEvent(body []byte) (models.InboundEvent, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.InboundEvent{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if err := compiledEventSchema.Validate(raw); err != nil {
		return models.InboundEvent{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	var ev models.InboundEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return models.InboundEvent{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return ev, nil
}
