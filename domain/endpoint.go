package domain

import (
	"fmt"
	"io"
)

// Endpoint is the describable network endpoint capability. TCPConnection is
// currently the only implementation; a new transport only needs Describe.
type Endpoint interface {
	Describe(w io.Writer)
}

// TCPConnection holds the address and port of a TCP peer. Both fields are
// copied at construction and never mutated, so two records built from the
// same inputs share nothing.
type TCPConnection struct {
	address string
	port    int
}

var _ Endpoint = TCPConnection{}

// NewTCPConnection builds a connection record. Inputs are taken as-is: the
// caller is responsible for providing a meaningful address and port.
func NewTCPConnection(address string, port int) TCPConnection {
	return TCPConnection{address: address, port: port}
}

func (c TCPConnection) Address() string {
	return c.address
}

func (c TCPConnection) Port() int {
	return c.port
}

// Describe writes the single-line human-readable form of the connection.
func (c TCPConnection) Describe(w io.Writer) {
	fmt.Fprintf(w, "TCP Connection: %s:%d\n", c.address, c.port)
}
