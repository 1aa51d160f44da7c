package models

import (
	"strings"
	"time"
)

const (
	ExpenseCategoryOther = "other"
	ExpenseTypePersonal  = "personal"
	ExpenseTypeBusiness  = "business"

	// DateLayout is the storage format of every date column.
	DateLayout = "2006-01-02"
)

// Expense uses the category-based schema. Records captured through the
// type-based form (description + expense_type) are folded into it by
// CreateExpenseRequest.Normalize, which must run before validation.
type Expense struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ProjectID *string   `json:"project_id" db:"project_id"`
	Title     string    `json:"title" db:"title"`
	Amount    float64   `json:"amount" db:"amount"`
	Category  string    `json:"category" db:"category"`
	Date      string    `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateExpenseRequest struct {
	Title     string  `json:"title" validate:"required,notblank,max=500"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	Category  string  `json:"category" validate:"omitempty,oneof=office software travel marketing other personal business"`
	Date      string  `json:"date" validate:"omitempty,dateformat"`
	ProjectID *string `json:"project_id" validate:"omitempty,uuid"`

	// Type-based form fields.
	Description string `json:"description" validate:"omitempty,max=500"`
	ExpenseType string `json:"expense_type" validate:"omitempty,oneof=personal business"`
}

// Normalize maps the type-based variant onto the canonical schema and fills
// defaults. today is used when no date was given; an empty today leaves the
// date unset.
func (r *CreateExpenseRequest) Normalize(today string) {
	if strings.TrimSpace(r.Title) == "" {
		r.Title = r.Description
	}
	r.Title = strings.TrimSpace(r.Title)
	if r.Category == "" {
		r.Category = r.ExpenseType
	}
	if r.Category == "" {
		r.Category = ExpenseCategoryOther
	}
	if r.Date == "" {
		r.Date = today
	}
	r.Description = ""
	r.ExpenseType = ""
}

type UpdateExpenseRequest struct {
	Title     *string  `json:"title" validate:"omitempty,notblank,max=500"`
	Amount    *float64 `json:"amount" validate:"omitempty,gte=0"`
	Category  *string  `json:"category" validate:"omitempty,oneof=office software travel marketing other personal business"`
	Date      *string  `json:"date" validate:"omitempty,dateformat"`
	ProjectID *string  `json:"project_id" validate:"omitempty,uuid"`

	// Type-based form fields.
	Description *string `json:"description" validate:"omitempty,notblank,max=500"`
	ExpenseType *string `json:"expense_type" validate:"omitempty,oneof=personal business"`
}

// Normalize folds the type-based fields into title and category. Canonical
// fields win when both are present.
func (r *UpdateExpenseRequest) Normalize() {
	if r.Title == nil && r.Description != nil {
		title := *r.Description
		r.Title = &title
	}
	if (r.Category == nil || *r.Category == "") && r.ExpenseType != nil && *r.ExpenseType != "" {
		category := *r.ExpenseType
		r.Category = &category
	}
	r.Description = nil
	r.ExpenseType = nil
}

// Payment is an amount received from a client.
type Payment struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ProjectID *string   `json:"project_id" db:"project_id"`
	Client    string    `json:"client" db:"client"`
	Date      string    `json:"date" db:"date"`
	Amount    float64   `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreatePaymentRequest struct {
	Client    string  `json:"client" validate:"required,notblank,max=200"`
	Date      string  `json:"date" validate:"omitempty,dateformat"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	ProjectID *string `json:"project_id" validate:"omitempty,uuid"`
}

type UpdatePaymentRequest struct {
	Client    *string  `json:"client" validate:"omitempty,notblank,max=200"`
	Date      *string  `json:"date" validate:"omitempty,dateformat"`
	Amount    *float64 `json:"amount" validate:"omitempty,gte=0"`
	ProjectID *string  `json:"project_id" validate:"omitempty,uuid"`
}
