package auth

import (
	"context"

	"github.com/qiaoohe/Sleep-Planet/internal"
)

type Provider interface {
	IssueToken(user *internal.User) (string, error)
	Verify(ctx context.Context, token string) (*internal.User, error)
}
