package cli

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/api"
)

func (a *App) register(ctx context.Context) (*api.AuthResponse, error) {
	name, err := GetSimpleText(a.reader, "Enter name", a.errOut)
	if err != nil {
		return nil, err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.errOut)
	if err != nil {
		return nil, err
	}
	password, err := GetPassword(a.reader, a.fd, a.errOut)
	if err != nil {
		return nil, err
	}

	return a.client.Register(ctx, name, email, password)
}

func (a *App) login(ctx context.Context) (*api.AuthResponse, error) {
	email, err := GetSimpleText(a.reader, "Enter email", a.errOut)
	if err != nil {
		return nil, err
	}
	password, err := GetPassword(a.reader, a.fd, a.errOut)
	if err != nil {
		return nil, err
	}

	return a.client.Login(ctx, email, password)
}

func (a *App) verify(ctx context.Context, args []string) (*api.AuthResponse, error) {
	if len(args) > 0 {
		return a.client.Verify(ctx, args[0])
	}

	token, err := GetSimpleText(a.reader, "Enter token", a.errOut)
	if err != nil {
		return nil, err
	}
	return a.client.Verify(ctx, token)
}
