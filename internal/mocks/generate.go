// Package mocks provides gomock implementations of ply's interfaces for tests.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	fetcher := mocks.NewMockFetcher(ctrl)
//	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(html, nil)
package mocks

// Generate mock for Fetcher interface from internal/fetch package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=fetcher_mock.go github.com/jonathan/ply/internal/fetch Fetcher
