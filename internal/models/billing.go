package models

// Car sizes as shown in the UI.
const (
	SizeSmall  = "Pequeno"
	SizeMedium = "Médio"
	SizeLarge  = "Grande"
)

// Accepted payment methods.
const (
	PaymentPix    = "PIX"
	PaymentCash   = "Dinheiro"
	PaymentCredit = "Cartão Crédito"
	PaymentDebit  = "Cartão Débito"
)

// Billing is a single service sale. Date and Time are kept as the
// UI-entered strings ("2024-01-01", "09:00"); the core does not interpret
// them beyond ordering in reports.
type Billing struct {
	ID            string
	WashType      string
	Size          string
	PaymentMethod string
	Value         float64
	Date          string
	Time          string
	CreatedBy     string
}

// Expense is a single operating expense.
type Expense struct {
	ID          string
	Description string
	Value       float64
	Date        string
	CreatedBy   string
}

// FinancialSummary aggregates billings and expenses for reporting.
type FinancialSummary struct {
	TotalBilling  float64
	TotalExpenses float64
	Profit        float64
}
