//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// StubHandleMessageCommand echoes each request's message name back.
type StubHandleMessageCommand struct {
	Received []entities.Message
	Contexts []context.Context
}

var _ commands.HandleMessage = (*StubHandleMessageCommand)(nil)

func (s *StubHandleMessageCommand) Execute(
	ctx context.Context,
	message entities.Message,
) entities.MessageResponse {
	s.Received = append(s.Received, message)
	s.Contexts = append(s.Contexts, ctx)
	return entities.MessageResponse{Message: message.Message}
}
