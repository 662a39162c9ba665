package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/homestock-server/internal/model"
)

// TLSListener opens TLS listeners with a certificate loaded once at construction.
type TLSListener struct {
	config *tls.Config
}

var (
	_ model.SecurityLayer = (*TLSListener)(nil)
	_ model.SecurityLayer = (*PlainListener)(nil)
)

// NewTLSListener loads the key pair and fails fast when it is unusable.
// The listener negotiates HTTP/2 via ALPN, which gRPC over TLS requires.
func NewTLSListener(certFileName, privateKeyFileName string) (*TLSListener, error) {
	cert, err := tls.LoadX509KeyPair(certFileName, privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	return &TLSListener{
		config: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
			NextProtos:   []string{"h2", "http/1.1"},
		},
	}, nil
}

func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	return tls.Listen(protocol, addr, l.config.Clone())
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}

// NewSecurityLayer returns a TLS layer when enableTLS is set, a plain one otherwise.
func NewSecurityLayer(enableTLS bool, certFileName, privateKeyFileName string) (model.SecurityLayer, error) {
	if !enableTLS {
		return NewPlainListener(), nil
	}
	return NewTLSListener(certFileName, privateKeyFileName)
}
