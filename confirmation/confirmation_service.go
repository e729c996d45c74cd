package confirmation

import (
	"context"

	"github.com/hanksha/strajk-bowling/session"
)

type Service struct {
	sessions session.Manager
	resolver *Resolver
}

func NewService(sessions session.Manager, resolver *Resolver) *Service {
	return &Service{sessions: sessions, resolver: resolver}
}

func (s *Service) Confirmation(ctx context.Context, sessionID string, state NavigationState) (Details, bool) {
	return s.resolver.Resolve(ctx, state, s.sessions.Open(sessionID))
}
