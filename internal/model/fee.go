package model

import "github.com/shopspring/decimal"

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

// swagger:model FeeInvoice
type FeeInvoice struct {
	BaseModel
	StudentID   uint            `gorm:"index;not null" json:"studentId"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	// PaidAmount 是缓存字段，报表一律以 Payment 汇总为准
	PaidAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"paidAmount"`
	Status     InvoiceStatus   `gorm:"size:20;default:'pending'" json:"status"`
	Payments   []Payment       `gorm:"foreignKey:FeeInvoiceID" json:"payments"`
}

func (FeeInvoice) TableName() string {
	return "fee_invoices"
}

// swagger:model Payment
type Payment struct {
	BaseModel
	FeeInvoiceID uint            `gorm:"index;not null" json:"feeInvoiceId"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Method       string          `gorm:"column:payment_method;size:30" json:"method"`
}

func (Payment) TableName() string {
	return "payments"
}
