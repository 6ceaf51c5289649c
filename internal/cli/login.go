package cli

import (
	"context"
	"errors"
	"os"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, _, err := a.authService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Invalid username or password")
			return err
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	a.currentUser = user
	printlnFn("Logged in as", user.Name)
	return nil
}

func (a *App) Logout(_ context.Context) error {
	a.currentUser = nil
	printlnFn("Logged out")
	return nil
}
