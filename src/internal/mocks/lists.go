package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/holectl/holectl/src/internal/lists"
)

// ListCall records one call made to MockListService.
type ListCall struct {
	Method string
	List   lists.List
	Domain string
}

// MockListService is a mock implementation of the ListService interface.
//
// Without configured functions Add and Remove succeed and Get returns an empty list.
type MockListService struct {
	// AddFunc is called by Add if not nil
	AddFunc func(ctx context.Context, list lists.List, domain string) error

	// RemoveFunc is called by Remove if not nil
	RemoveFunc func(ctx context.Context, list lists.List, domain string) error

	// GetFunc is called by Get if not nil
	GetFunc func(ctx context.Context, list lists.List) ([]string, error)

	mu    sync.Mutex
	calls []ListCall
}

// NewMockListService creates a new mock list service with default behavior.
func NewMockListService() *MockListService {
	return &MockListService{}
}

func (m *MockListService) record(method string, list lists.List, domain string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, ListCall{Method: method, List: list, Domain: domain})
}

// Calls returns the calls made so far.
func (m *MockListService) Calls() []ListCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ListCall(nil), m.calls...)
}

// Add records the call and delegates to AddFunc.
func (m *MockListService) Add(ctx context.Context, list lists.List, domain string) error {
	m.record("Add", list, domain)
	if m.AddFunc != nil {
		return m.AddFunc(ctx, list, domain)
	}
	return nil
}

// Remove records the call and delegates to RemoveFunc.
func (m *MockListService) Remove(ctx context.Context, list lists.List, domain string) error {
	m.record("Remove", list, domain)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, list, domain)
	}
	return nil
}

// Get records the call and delegates to GetFunc.
func (m *MockListService) Get(ctx context.Context, list lists.List) ([]string, error) {
	m.record("Get", list, "")
	if m.GetFunc != nil {
		return m.GetFunc(ctx, list)
	}
	return []string{}, nil
}

// MockConfigCompiler is a mock implementation of the ConfigCompiler interface.
type MockConfigCompiler struct {
	// PreviewFunc is called by Preview if not nil
	PreviewFunc func(w io.Writer) error

	// GenerateFunc is called by Generate if not nil
	GenerateFunc func() error

	SourcePath      string
	DestinationPath string

	mu            sync.Mutex
	previewCalls  int
	generateCalls int
}

// NewMockConfigCompiler creates a new mock compiler with default behavior.
func NewMockConfigCompiler() *MockConfigCompiler {
	return &MockConfigCompiler{
		SourcePath:      "/etc/pihole/setupVars.conf",
		DestinationPath: "/etc/dnsmasq.d/01-pihole.conf",
	}
}

// Preview delegates to PreviewFunc.
func (m *MockConfigCompiler) Preview(w io.Writer) error {
	m.mu.Lock()
	m.previewCalls++
	m.mu.Unlock()
	if m.PreviewFunc != nil {
		return m.PreviewFunc(w)
	}
	return nil
}

// Generate delegates to GenerateFunc.
func (m *MockConfigCompiler) Generate() error {
	m.mu.Lock()
	m.generateCalls++
	m.mu.Unlock()
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return nil
}

func (m *MockConfigCompiler) Source() string      { return m.SourcePath }
func (m *MockConfigCompiler) Destination() string { return m.DestinationPath }

// PreviewCalls returns the number of Preview calls.
func (m *MockConfigCompiler) PreviewCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.previewCalls
}

// GenerateCalls returns the number of Generate calls.
func (m *MockConfigCompiler) GenerateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generateCalls
}
