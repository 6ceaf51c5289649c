package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

func (a *App) ListBillings(ctx context.Context) error {
	list, err := a.billingService.List(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to list billings", "error", err)
		return err
	}
	if len(list) == 0 {
		printlnFn("No billings recorded")
		return nil
	}
	for _, b := range list {
		printlnFn(fmt.Sprintf("%s | %s %s | %s | R$ %.2f | %s %s",
			b.ID, b.WashType, b.Size, b.PaymentMethod, b.Value, b.Date, b.Time))
	}
	return nil
}

func (a *App) AddBilling(ctx context.Context) error {
	washType, err := GetSimpleText(a.reader, "Wash type", os.Stdout)
	if err != nil {
		return err
	}
	size, err := GetSimpleText(a.reader,
		fmt.Sprintf("Vehicle size (%s, %s, %s)", models.SizeSmall, models.SizeMedium, models.SizeLarge), os.Stdout)
	if err != nil {
		return err
	}
	payment, err := GetSimpleText(a.reader, "Payment method", os.Stdout)
	if err != nil {
		return err
	}
	value, err := GetFloat(a.reader, "Value", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	now := time.Now()
	b := &models.Billing{
		WashType:      washType,
		Size:          size,
		PaymentMethod: payment,
		Value:         value,
		Date:          now.Format("2006-01-02"),
		Time:          now.Format("15:04"),
		CreatedBy:     a.currentUser.Username,
	}
	if err := a.billingService.Save(ctx, b); err != nil {
		a.log.Error(ctx, "failed to save billing", "error", err)
		return err
	}
	printlnFn("Billing recorded:", b.ID)
	return nil
}

func (a *App) DeleteBilling(ctx context.Context, id string) error {
	if !a.isAdmin() {
		printlnFn("Only administrators can delete billings")
		return nil
	}
	if err := a.billingService.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "failed to delete billing", "error", err)
		return err
	}
	printlnFn("Billing deleted")
	return nil
}

func (a *App) Summary(ctx context.Context) error {
	s, err := a.billingService.Summary(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to compute summary", "error", err)
		return err
	}
	printlnFn(fmt.Sprintf("Billings: R$ %.2f", s.TotalBilling))
	printlnFn(fmt.Sprintf("Expenses: R$ %.2f", s.TotalExpenses))
	printlnFn(fmt.Sprintf("Profit:   R$ %.2f", s.Profit))
	return nil
}
