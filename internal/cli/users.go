package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

func (a *App) ListUsers(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Only administrators can list users")
		return nil
	}
	list, err := a.userService.List(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to list users", "error", err)
		return err
	}
	for _, u := range list {
		printlnFn(fmt.Sprintf("%s | %s | %s | %s", u.ID, u.Username, u.Name, u.Role))
	}
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Only administrators can add users")
		return nil
	}
	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Role (admin or staff)", os.Stdout)
	if err != nil {
		return err
	}
	if role != string(models.RoleAdmin) {
		role = string(models.RoleStaff)
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u := &models.User{Username: username, Name: name, Role: models.Role(role)}
	if err := a.userService.Save(ctx, u, password); err != nil {
		a.log.Error(ctx, "failed to save user", "error", err)
		return err
	}
	printlnFn("User created:", u.ID)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, id string) error {
	if !a.isAdmin() {
		printlnFn("Only administrators can delete users")
		return nil
	}
	if err := a.userService.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "failed to delete user", "error", err)
		return err
	}
	printlnFn("Done")
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.userService.ChangePassword(ctx, a.currentUser.ID, password); err != nil {
		a.log.Error(ctx, "failed to change password", "error", err)
		return err
	}
	printlnFn("Password changed")
	return nil
}
