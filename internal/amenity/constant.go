package amenity

// TopicStatusUpdated carries StatusUpdate events from the simulator to the consumer.
const TopicStatusUpdated = "amenity.status.updated"

// Payload keys shared by every index backend.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldScope       = "airport_code"
	FieldSubScope    = "terminal_id"
	FieldLocation    = "location_label"
	FieldIsOpen      = "is_open_now"
	FieldWaitMinutes = "wait_time_minutes"
	FieldUpdatedAt   = "last_updated_ts"
)
