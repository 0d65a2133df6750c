package core

// Entity is a unique identifier for a simulation entity
type Entity uint64

// None is the zero entity, used as a null reference
const None Entity = 0
