package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener a Server accepts connections on. It is
// shared by the HTTP and gRPC servers so both use the same TLS settings.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a network server with a graceful lifecycle.
type Server interface {
	// Start blocks until the server stops. A graceful Stop is not an error.
	Start(securityLayer SecurityLayer) error
	// Stop drains in-flight requests until ctx is done.
	Stop(ctx context.Context) error
	Address() string
}
