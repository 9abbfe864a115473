package mocks

import (
	"context"

	"count-diff/core/upstream"

	"github.com/stretchr/testify/mock"
)

// Fetcher is a mock implementation of upstream.Fetcher
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) Fetch(ctx context.Context, src upstream.Source, page, size int) (*upstream.Page, error) {
	args := m.Called(ctx, src, page, size)
	if p, ok := args.Get(0).(*upstream.Page); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
