package ftl

import (
	"bufio"
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/holectl/holectl/src/internal/errors"
)

// serveOnce accepts one connection, records the command line and writes reply.
// With hang set it never replies.
func serveOnce(t *testing.T, reply []byte, hang bool) (string, <-chan string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "FTL.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		line, _ := bufio.NewReader(conn).ReadString('\n')
		received <- line
		if hang {
			time.Sleep(time.Second)
			return
		}
		_, _ = conn.Write(reply)
	}()
	return path, received
}

func TestClient_Send(t *testing.T) {
	path, received := serveOnce(t, []byte{EOM}, false)

	c := NewClient("unix", path, 2*time.Second)
	if err := c.Send(context.Background(), "recompile-regex"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	select {
	case line := <-received:
		if line != ">recompile-regex\n" {
			t.Errorf("server received %q", line)
		}
	case <-time.After(time.Second):
		t.Fatal("server did not receive a command")
	}
}

func TestClient_SendFailures(t *testing.T) {
	tests := []struct {
		name  string
		reply []byte
		hang  bool
	}{
		{"payload before eom", []byte{0x91, 0x01, EOM}, false},
		{"closed without eom", []byte{}, false},
		{"no reply", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, _ := serveOnce(t, tt.reply, tt.hang)

			c := NewClient("unix", path, 200*time.Millisecond)
			err := c.Send(context.Background(), "recompile-regex")
			if errors.CodeOf(err) != errors.ErrCodeControlChannel {
				t.Errorf("Send() error = %v, want CONTROL_CHANNEL_ERROR", err)
			}
		})
	}
}

func TestClient_Request(t *testing.T) {
	path, _ := serveOnce(t, []byte{0x91, 0x01, EOM}, false)

	c := NewClient("unix", path, time.Second)
	payload, err := c.Request(context.Background(), "stats")
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if len(payload) != 2 || payload[0] != 0x91 || payload[1] != 0x01 {
		t.Errorf("payload = %x", payload)
	}
}

func TestClient_NotListening(t *testing.T) {
	c := NewClient("unix", filepath.Join(t.TempDir(), "missing.sock"), time.Second)
	err := c.Send(context.Background(), "recompile-regex")
	if errors.CodeOf(err) != errors.ErrCodeControlChannel {
		t.Errorf("Send() error = %v, want CONTROL_CHANNEL_ERROR", err)
	}
}

func TestDryRunChannel(t *testing.T) {
	if err := (DryRunChannel{}).Send(context.Background(), "recompile-regex"); err != nil {
		t.Errorf("Send() error = %v", err)
	}
}

func TestClient_RequestHonoursCancelWithoutTimeout(t *testing.T) {
	path, _ := serveOnce(t, nil, true)

	c := NewClient("unix", path, 0)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	_, err := c.Request(ctx, "stats")
	if errors.CodeOf(err) != errors.ErrCodeControlChannel {
		t.Errorf("Request() error = %v, want CONTROL_CHANNEL_ERROR", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Request() returned after %v, want prompt return on cancel", elapsed)
	}
}
