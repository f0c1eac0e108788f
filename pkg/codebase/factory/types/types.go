package types

// Service is the service name
type Service string

// Module is the module name inside a service
type Module string

const (
	// Subscriber module
	Subscriber Module = "subscriber"
)
