// Package constants holds provider names shared by configuration and wiring.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAMQP   = "amqp"
	PubSubProviderNoop   = "noop"
)

// Route catalog providers
const (
	CatalogProviderBlob     = "blob"
	CatalogProviderPostgres = "postgres"
)

// Snapshot store providers
const (
	SnapshotProviderMemory = "memory"
	SnapshotProviderRedis  = "redis"
	SnapshotProviderBlob   = "blob"
)

// Event attribute keys used on published messages
const (
	AttrEventType = "event_type"
	AttrRouteID   = "route_id"
	AttrHistoryID = "history_id"
	AttrDeviceID  = "device_id"
	AttrRequestID = "request_id"
)
