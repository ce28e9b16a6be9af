package service

import "context"

// allowAllAuthorizer lets every caller through. The server has no notion of
// identity, so this is the only behaviour it can offer today.
type allowAllAuthorizer struct{}

// NewAllowAllAuthorizer returns an [Authorizer] that never refuses.
func NewAllowAllAuthorizer() Authorizer {
	return allowAllAuthorizer{}
}

func (allowAllAuthorizer) AuthorizeAdmin(context.Context) error {
	return nil
}

// AuthorizerFunc adapts a plain function to [Authorizer].
type AuthorizerFunc func(ctx context.Context) error

func (f AuthorizerFunc) AuthorizeAdmin(ctx context.Context) error {
	return f(ctx)
}
