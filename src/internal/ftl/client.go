// Package ftl talks to the running FTL resolver over its command socket.
//
// A command is sent as ">" + name + "\n". FTL answers with a MessagePack
// payload terminated by the end-of-message marker 0xc1, a byte MessagePack
// never uses. Commands that only trigger an action reply with the marker alone.
package ftl

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/log"
	"github.com/holectl/holectl/src/internal/utils"
)

// EOM terminates every FTL response.
const EOM byte = 0xc1

// Client is an FTL command socket client. Each call opens its own connection.
type Client struct {
	network string
	address string
	timeout time.Duration
}

// NewClient creates a client for a "unix" socket path or a "tcp" host:port.
// A zero timeout leaves the deadline to the caller's context.
func NewClient(network, address string, timeout time.Duration) *Client {
	return &Client{
		network: network,
		address: address,
		timeout: timeout,
	}
}

// Request sends command and returns the response payload without the EOM marker.
func (c *Client) Request(ctx context.Context, command string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, c.network, c.address)
	if err != nil {
		return nil, errors.NewControlChannelError(fmt.Sprintf("failed to connect to FTL at %s", c.address), err)
	}
	defer utils.CloseOrWarn(conn)

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, errors.NewControlChannelError("failed to set FTL deadline", err)
		}
	}
	// Unblocks I/O on cancellation when ctx carries no deadline.
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	log.Debugf("Sending >%s to FTL", command)
	if _, err := conn.Write([]byte(">" + command + "\n")); err != nil {
		return nil, errors.NewControlChannelError(fmt.Sprintf("failed to send %q", command), err)
	}

	payload, err := bufio.NewReader(conn).ReadBytes(EOM)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, errors.NewControlChannelError(fmt.Sprintf("no end of message for %q", command), err)
	}
	return payload[:len(payload)-1], nil
}

// Send implements lists.ControlChannel: the response must be empty.
func (c *Client) Send(ctx context.Context, command string) error {
	payload, err := c.Request(ctx, command)
	if err != nil {
		return err
	}
	if len(payload) > 0 {
		return errors.NewControlChannelError(fmt.Sprintf("unexpected %d byte response to %q", len(payload), command), nil)
	}
	return nil
}

// DryRunChannel logs commands instead of sending them.
type DryRunChannel struct{}

func (DryRunChannel) Send(_ context.Context, command string) error {
	log.Infof("[dry-run] would send >%s to FTL", command)
	return nil
}
