package client

import (
	"fmt"

	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps the gRPC connection to the daemon.
type Client struct {
	conn         *grpc.ClientConn
	Session      wppmockv1.SessionServiceClient
	Chat         wppmockv1.ChatServiceClient
	Conversation wppmockv1.ConversationServiceClient
}

// New dials the daemon's Unix domain socket and returns typed service clients.
func New(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	return &Client{
		conn:         conn,
		Session:      wppmockv1.NewSessionServiceClient(conn),
		Chat:         wppmockv1.NewChatServiceClient(conn),
		Conversation: wppmockv1.NewConversationServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
