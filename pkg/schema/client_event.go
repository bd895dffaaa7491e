package schema

import "time"

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "client_event",
	"fields" : [
		{"name": "id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "path", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "query", "type": "string"},
		{"name": "role", "type": "string"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type ClientEventV1 struct {
	ID         string    `avro:"id"`
	Kind       string    `avro:"kind"`
	Path       string    `avro:"path"`
	Category   string    `avro:"category"`
	Query      string    `avro:"query"`
	Role       string    `avro:"role"`
	OccurredAt time.Time `avro:"occurred_at"`
}
