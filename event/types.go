package event

// Type identifies a simulation event
type Type int

const (
	// TypeComponentActivity reports that an external component did work
	// Producer: network ingress, telemetry, renderer key bindings, generator
	// Consumer: ActivationSystem | Payload: *ComponentActivityPayload
	TypeComponentActivity Type = iota

	// TypeHealthUpdate carries an externally supplied partial health state
	// Producer: network ingress
	// Consumer: HealthSystem | Payload: *HealthUpdatePayload
	TypeHealthUpdate

	// TypeBulkUpdate carries a batch of component activities to be
	// activated at independently staggered delays
	// Producer: network ingress
	// Consumer: ActivationSystem | Payload: *BulkUpdatePayload
	TypeBulkUpdate

	// TypeIngressConnected signals an established ingress session
	// Producer: network client | Payload: *IngressStatusPayload
	TypeIngressConnected

	// TypeIngressDown signals permanent loss of the ingress connection.
	// The generator system takes over for the remainder of the session.
	// Producer: network client
	// Consumer: GeneratorSystem | Payload: *IngressStatusPayload
	TypeIngressDown
)

// Event is a single queued simulation event
type Event struct {
	Type    Type
	Payload any
	Frame   int64
}
