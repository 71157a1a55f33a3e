package auth

import (
	"context"

	"credit/core"
)

type authorizer struct {
	admins map[string]bool
}

// New new admin authorizer. An empty admin list rejects every caller.
func New(admins []string) core.IAuthorizer {
	m := make(map[string]bool, len(admins))
	for _, id := range admins {
		m[id] = true
	}

	return &authorizer{admins: m}
}

func (a *authorizer) CheckAuthorized(ctx context.Context, caller string) error {
	if caller == "" || !a.admins[caller] {
		return core.ErrOperationForbidden
	}

	return nil
}
