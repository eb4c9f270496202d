package emulator

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gbcore/internal/cpu"
)

// Client sends commands to a Server.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// Dial connects to the server at url, e.g. ws://localhost:8090/.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("emulator: dialing %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Send sends a command and waits for its response. A command the
// server failed to carry out is reported through the returned error.
func (c *Client) Send(cmd Command, data []byte) (ResponsePacket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, _ := CommandPacket{Command: cmd, Data: data}.MarshalBinary()
	if err := c.conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
		return ResponsePacket{}, err
	}
	_, message, err := c.conn.ReadMessage()
	if err != nil {
		return ResponsePacket{}, err
	}

	var response ResponsePacket
	if err := response.UnmarshalBinary(message); err != nil {
		return response, err
	}
	if response.Command != cmd {
		return response, fmt.Errorf("%w: response to %s for %s", ErrMalformedPacket, response.Command, cmd)
	}
	return response, response.Error
}

// Registers requests the registers of the emulator.
func (c *Client) Registers() (cpu.Registers, error) {
	response, err := c.Send(CommandRegisters, nil)
	if err != nil {
		return cpu.Registers{}, err
	}
	return DecodeRegisters(response.Data)
}

// Status requests the status of the emulator.
func (c *Client) Status() (Status, error) {
	response, err := c.Send(CommandStatus, nil)
	if err != nil {
		return Errored, err
	}
	if len(response.Data) != 1 {
		return Errored, ErrMalformedPacket
	}
	return Status(response.Data[0]), nil
}

// Close asks the server to close the connection and closes it.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, _ := CommandPacket{Command: CommandClose}.MarshalBinary()
	c.conn.WriteMessage(websocket.BinaryMessage, b)
	return c.conn.Close()
}
