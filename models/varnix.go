package models

import "time"

const (
	VarnixStatusPending   = "pending"
	VarnixStatusOngoing   = "ongoing"
	VarnixStatusCompleted = "completed"

	PaymentModeUPI  = "upi"
	PaymentModeCash = "cash"
	PaymentModeBank = "bank"
)

// VarnixProject is a line on the single-client invoice. Cost is always
// DevelopmentCost + AdditionalCost.
type VarnixProject struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	ProjectID       *string   `json:"project_id" db:"project_id"`
	ProjectName     string    `json:"project_name" db:"project_name"`
	DevelopmentCost float64   `json:"development_cost" db:"development_cost"`
	AdditionalCost  float64   `json:"additional_cost" db:"additional_cost"`
	Cost            float64   `json:"cost" db:"cost"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

type CreateVarnixProjectRequest struct {
	ProjectID       *string `json:"project_id" validate:"omitempty,uuid"`
	ProjectName     string  `json:"project_name" validate:"required,notblank,max=200"`
	DevelopmentCost float64 `json:"development_cost" validate:"gte=0"`
	AdditionalCost  float64 `json:"additional_cost" validate:"gte=0"`
	Status          string  `json:"status" validate:"omitempty,oneof=pending ongoing completed"`
}

type UpdateVarnixProjectRequest struct {
	ProjectName     *string  `json:"project_name" validate:"omitempty,notblank,max=200"`
	DevelopmentCost *float64 `json:"development_cost" validate:"omitempty,gte=0"`
	AdditionalCost  *float64 `json:"additional_cost" validate:"omitempty,gte=0"`
	Status          *string  `json:"status" validate:"omitempty,oneof=pending ongoing completed"`
}

// AddVarnixFromProjectRequest onboards an existing dashboard project.
type AddVarnixFromProjectRequest struct {
	ProjectID string `json:"project_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"omitempty,oneof=pending ongoing completed"`
}

type VarnixPayment struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Date      string    `json:"date" db:"date"`
	Amount    float64   `json:"amount" db:"amount"`
	Mode      string    `json:"mode" db:"mode"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateVarnixPaymentRequest struct {
	Date   string  `json:"date" validate:"omitempty,dateformat"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Mode   string  `json:"mode" validate:"omitempty,oneof=upi cash bank"`
}

type UpdateVarnixPaymentRequest struct {
	Date   *string  `json:"date" validate:"omitempty,dateformat"`
	Amount *float64 `json:"amount" validate:"omitempty,gte=0"`
	Mode   *string  `json:"mode" validate:"omitempty,oneof=upi cash bank"`
}
