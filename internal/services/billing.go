// Package services exposes the typed domain access functions the UI
// collaborators call: CRUD for billings, expenses and users, plus
// credential-based login. Every write funnels through the
// synchronization controller so it is persisted locally and pushed to
// the relay before returning.
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/dbx"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/repositories/billings"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/repositories/expenses"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/syncer"
)

type BillingService struct {
	ctrl *syncer.Controller
}

func NewBillingService(ctrl *syncer.Controller) *BillingService {
	return &BillingService{ctrl: ctrl}
}

func (s *BillingService) List(ctx context.Context) ([]models.Billing, error) {
	return billings.NewSQLiteRepository(s.ctrl.DB()).GetAll(ctx)
}

// Save upserts a billing. A missing id marks a new record and is
// generated client-side.
func (s *BillingService) Save(ctx context.Context, b *models.Billing) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return s.ctrl.Mutate(ctx, func(ctx context.Context, db dbx.DBTX) error {
		return billings.NewSQLiteRepository(db).CreateOrUpdate(ctx, b)
	})
}

func (s *BillingService) Delete(ctx context.Context, id string) error {
	return s.ctrl.Mutate(ctx, func(ctx context.Context, db dbx.DBTX) error {
		return billings.NewSQLiteRepository(db).DeleteByID(ctx, id)
	})
}

// Summary aggregates totals for the dashboard and reports.
func (s *BillingService) Summary(ctx context.Context) (*models.FinancialSummary, error) {
	db := s.ctrl.DB()

	totalBilling, err := billings.NewSQLiteRepository(db).TotalValue(ctx)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := expenses.NewSQLiteRepository(db).TotalValue(ctx)
	if err != nil {
		return nil, err
	}

	return &models.FinancialSummary{
		TotalBilling:  totalBilling,
		TotalExpenses: totalExpenses,
		Profit:        totalBilling - totalExpenses,
	}, nil
}
