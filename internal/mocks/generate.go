// Package mocks provides mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe
// mocks for the port interfaces. To regenerate after interface
// changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	users := mocks.NewMockUserRepository(ctrl)
//	users.EXPECT().GetByUsername(gomock.Any(), "root").Return(user, nil)
package mocks

// Generate mocks for the port interfaces in internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_mocks.go github.com/fireproject/fire-engine-bridge/internal/ports UserRepository,UserCache,PasswordHasher,TokenIssuer,TokenVerifier,EngineClient
