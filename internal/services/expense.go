package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/dbx"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/repositories/expenses"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/syncer"
)

type ExpenseService struct {
	ctrl *syncer.Controller
}

func NewExpenseService(ctrl *syncer.Controller) *ExpenseService {
	return &ExpenseService{ctrl: ctrl}
}

func (s *ExpenseService) List(ctx context.Context) ([]models.Expense, error) {
	return expenses.NewSQLiteRepository(s.ctrl.DB()).GetAll(ctx)
}

func (s *ExpenseService) Save(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return s.ctrl.Mutate(ctx, func(ctx context.Context, db dbx.DBTX) error {
		return expenses.NewSQLiteRepository(db).CreateOrUpdate(ctx, e)
	})
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return s.ctrl.Mutate(ctx, func(ctx context.Context, db dbx.DBTX) error {
		return expenses.NewSQLiteRepository(db).DeleteByID(ctx, id)
	})
}
