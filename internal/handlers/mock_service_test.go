package handlers_test

import (
	"context"
	"errors"

	"github.com/serroba/linkstash/internal/mapping"
)

var errMock = errors.New("mock store failure")

// mockService is an error-injecting handlers.MappingService.
type mockService struct {
	createCode mapping.Code
	createErr  error
	resolved   *mapping.Mapping
	resolveErr error
	renewed    *mapping.Mapping
	renewErr   error
	listPage   *mapping.Page
	listErr    error
}

func (m *mockService) Create(_ context.Context, _, _ string) (mapping.Code, error) {
	return m.createCode, m.createErr
}

func (m *mockService) Resolve(_ context.Context, _ mapping.Code, _ string) (*mapping.Mapping, error) {
	return m.resolved, m.resolveErr
}

func (m *mockService) Renew(_ context.Context, _ mapping.Code, _ string) (*mapping.Mapping, error) {
	return m.renewed, m.renewErr
}

func (m *mockService) List(_ context.Context, _ string, _, _ int) (*mapping.Page, error) {
	return m.listPage, m.listErr
}
