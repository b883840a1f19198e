package gateways

import (
	"context"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// AgentTransport sends one message to one remote agent.
// A non-nil error means the call itself failed (network, decoding); a reported
// failure comes back as a result with Success=false.
type AgentTransport interface {
	Send(ctx context.Context, message string, targetID string) (*entities.AgentResult, error)
}
