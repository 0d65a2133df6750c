package event

// ComponentActivityPayload reports work done by an external component
type ComponentActivityPayload struct {
	Component string
	Intensity float64
}

// HealthUpdatePayload shallow-merges into the current health metrics.
// Nil fields are left untouched.
type HealthUpdatePayload struct {
	Overall     *float64
	Memory      *float64
	Training    *float64
	Connections *float64
}

// BulkUpdatePayload carries a batch of activities; each entry is
// activated after an independent random delay
type BulkUpdatePayload struct {
	Components []ComponentActivityPayload
}

// IngressStatusPayload describes an ingress connection transition
type IngressStatusPayload struct {
	SessionID string
	Reason    string
}
