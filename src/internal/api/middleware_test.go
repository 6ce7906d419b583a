package api

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/vishvananda/netlink"

	"github.com/holectl/holectl/src/internal/log"
	"github.com/holectl/holectl/src/internal/networking"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestPrivateSubnetOnly(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       int
	}{
		{name: "lan ipv4", remoteAddr: "192.168.1.10:5555", want: http.StatusOK},
		{name: "loopback", remoteAddr: "127.0.0.1:5555", want: http.StatusOK},
		{name: "ula ipv6", remoteAddr: "[fd00::1]:5555", want: http.StatusOK},
		{name: "public ipv4", remoteAddr: "8.8.8.8:5555", want: http.StatusForbidden},
		{name: "public peer spoofing header", remoteAddr: "8.8.8.8:5555", forwarded: "10.0.0.1", want: http.StatusForbidden},
		{name: "local proxy forwarding public", remoteAddr: "127.0.0.1:5555", forwarded: "8.8.8.8, 10.0.0.1", want: http.StatusForbidden},
		{name: "local proxy forwarding lan", remoteAddr: "127.0.0.1:5555", forwarded: "10.0.0.7", want: http.StatusOK},
		{name: "garbage", remoteAddr: "nonsense", want: http.StatusForbidden},
	}

	handler := PrivateSubnetOnly(http.HandlerFunc(okHandler))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	if !IsPrivateIP(net.ParseIP("172.20.1.1")) {
		t.Error("172.20.1.1 should be private")
	}
	if IsPrivateIP(net.ParseIP("172.32.0.1")) {
		t.Error("172.32.0.1 should not be private")
	}
}

func TestLogger_RequestID(t *testing.T) {
	var seen string
	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("Expected a UUID request id, got %q", id)
	}
	if seen != id {
		t.Errorf("Expected context id %q, got %q", id, seen)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected status to pass through, got %d", rec.Code)
	}

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("Expected client id %q to be kept, got %q", incoming, got)
	}
}

func TestRecovery(t *testing.T) {
	restore := log.SetOutput(io.Discard, io.Discard)
	defer restore()

	handler := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
}

func TestGetInterfaces(t *testing.T) {
	lo := netlink.NewLinkAttrs()
	lo.Name = "lo"
	lo.Flags = net.FlagUp | net.FlagLoopback
	eth := netlink.NewLinkAttrs()
	eth.Name = "eth0"
	eth.Flags = net.FlagUp

	h := NewHandler(nil, VersionInfo{})
	h.interfaces = func() ([]networking.Interface, error) {
		return []networking.Interface{
			{Link: &netlink.Dummy{LinkAttrs: lo}},
			{Link: &netlink.Dummy{LinkAttrs: eth}},
		}, nil
	}

	rec := httptest.NewRecorder()
	h.GetInterfaces(rec, httptest.NewRequest(http.MethodGet, "/api/v1/interfaces", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"name":"eth0"`) || strings.Contains(body, `"name":"lo"`) {
		t.Errorf("Expected only eth0, got %s", body)
	}
}
