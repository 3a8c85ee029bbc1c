package factory

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// FakeServerName is reported in the initialize result of a FakeServer.
const FakeServerName = "fake-analysis-server"

// FakeServer is the far end of a session transport. It answers every call, returns a fixed initialize result and records what it receives.
type FakeServer struct {
	conn     jsonrpc2.Conn
	client   net.Conn
	requests chan jsonrpc2.Request
}

// NewFakeServer starts a FakeServer on an in-memory pipe.
func NewFakeServer() *FakeServer {
	serverSide, clientSide := net.Pipe()
	s := &FakeServer{
		client:   clientSide,
		requests: make(chan jsonrpc2.Request, 64),
	}
	s.conn = jsonrpc2.NewConn(jsonrpc2.NewStream(serverSide))
	s.conn.Go(context.Background(), s.handle)
	return s
}

// ClientEnd is the transport to hand to the client under test.
func (s *FakeServer) ClientEnd() io.ReadWriteCloser {
	return s.client
}

// Next returns the next request or notification received, in arrival order.
func (s *FakeServer) Next(timeout time.Duration) (jsonrpc2.Request, error) {
	select {
	case req := <-s.requests:
		return req, nil
	case <-time.After(timeout):
		return nil, errors.New("no message received")
	}
}

// Call sends a server-to-client request and decodes the reply into result.
func (s *FakeServer) Call(ctx context.Context, method string, params, result interface{}) error {
	_, err := s.conn.Call(ctx, method, params, result)
	return err
}

// Notify sends a server-to-client notification.
func (s *FakeServer) Notify(ctx context.Context, method string, params interface{}) error {
	return s.conn.Notify(ctx, method, params)
}

// Close tears down the transport and waits for the server loop to exit.
func (s *FakeServer) Close() error {
	err := s.conn.Close()
	<-s.conn.Done()
	return err
}

func (s *FakeServer) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.requests <- req
	if req.Method() == protocol.MethodInitialize {
		return reply(ctx, protocol.InitializeResult{ServerInfo: &protocol.ServerInfo{Name: FakeServerName}}, nil)
	}
	return reply(ctx, nil, nil)
}
