package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

func (a *App) ListExpenses(ctx context.Context) error {
	list, err := a.expenseService.List(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to list expenses", "error", err)
		return err
	}
	if len(list) == 0 {
		printlnFn("No expenses recorded")
		return nil
	}
	for _, e := range list {
		printlnFn(fmt.Sprintf("%s | %s | R$ %.2f | %s", e.ID, e.Description, e.Value, e.Date))
	}
	return nil
}

func (a *App) AddExpense(ctx context.Context) error {
	description, err := GetSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	value, err := GetFloat(a.reader, "Value", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	e := &models.Expense{
		Description: description,
		Value:       value,
		Date:        time.Now().Format("2006-01-02"),
		CreatedBy:   a.currentUser.Username,
	}
	if err := a.expenseService.Save(ctx, e); err != nil {
		a.log.Error(ctx, "failed to save expense", "error", err)
		return err
	}
	printlnFn("Expense recorded:", e.ID)
	return nil
}

func (a *App) DeleteExpense(ctx context.Context, id string) error {
	if !a.isAdmin() {
		printlnFn("Only administrators can delete expenses")
		return nil
	}
	if err := a.expenseService.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "failed to delete expense", "error", err)
		return err
	}
	printlnFn("Expense deleted")
	return nil
}
