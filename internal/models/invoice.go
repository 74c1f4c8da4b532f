package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the header row of one sale. Customer fields are a snapshot taken
// at invoice time, not a reference into tbl_customer, so invoices stay
// historically accurate when the party record changes later.
type Invoice struct {
	InvoiceID         uint            `gorm:"column:invoiceID;primaryKey" json:"invoiceID"`
	CustomerName      string          `gorm:"column:customerName;size:100;not null" json:"customerName"`
	Phone             string          `gorm:"column:Phone;size:15;not null" json:"Phone"`
	Email             string          `gorm:"column:Email;size:100" json:"Email"`
	Address           string          `gorm:"column:Address;type:text" json:"Address"`
	City              string          `gorm:"column:City;size:50" json:"City"`
	State             string          `gorm:"column:State;size:50" json:"State"`
	Pin               string          `gorm:"column:Pin;size:10" json:"Pin"`
	Country           string          `gorm:"column:Country;size:50" json:"Country"`
	CompanyName       string          `gorm:"column:companyName;size:100" json:"companyName"`
	Gstin             string          `gorm:"column:Gstin;size:20" json:"Gstin"`
	Date              time.Time       `gorm:"column:Date;type:date;not null;index" json:"Date"`
	DiscountAmount    decimal.Decimal `gorm:"column:discountAmount;type:decimal(10,2);default:0.00" json:"discountAmount"`
	Cgst              decimal.Decimal `gorm:"column:Cgst;type:decimal(10,2);default:0.00" json:"Cgst"`
	Sgst              decimal.Decimal `gorm:"column:Sgst;type:decimal(10,2);default:0.00" json:"Sgst"`
	Igst              decimal.Decimal `gorm:"column:Igst;type:decimal(10,2);default:0.00" json:"Igst"`
	TotalGst          decimal.Decimal `gorm:"column:totalGst;type:decimal(10,2);default:0.00" json:"totalGst"`
	TotalAmount       decimal.Decimal `gorm:"column:TotalAmount;type:decimal(10,2);not null" json:"TotalAmount"`
	PaidAmount        decimal.Decimal `gorm:"column:PaidAmount;type:decimal(10,2);default:0.00" json:"PaidAmount"`
	BalanceAmount     decimal.Decimal `gorm:"column:BalanceAmount;type:decimal(10,2);default:0.00" json:"BalanceAmount"`
	TransectionType   string          `gorm:"column:TransectionType;size:50;not null" json:"TransectionType"`
	TransectionStatus string          `gorm:"column:TransectionStatus;size:50;default:Pending" json:"TransectionStatus"`
	PaymentType       string          `gorm:"column:PaymentType;size:50;default:Cash" json:"PaymentType"`
	BillerName        string          `gorm:"column:BillerName;size:100;default:Admin" json:"BillerName"`
	Items             []InvoiceItem   `gorm:"foreignKey:InvoiceID;references:InvoiceID" json:"items,omitempty"`
}

func (Invoice) TableName() string { return "tbl_invoice" }

// InvoiceItem is one product line within an invoice. ProductName, Category and
// SalePrice are point-in-time copies from the catalog.
type InvoiceItem struct {
	ItemID              uint            `gorm:"column:itemID;primaryKey" json:"itemID"`
	InvoiceID           uint            `gorm:"column:invoiceID;not null;index" json:"invoiceID"`
	ProductName         string          `gorm:"column:ProductName;size:150;not null" json:"ProductName"`
	Category            string          `gorm:"column:Category;size:100;not null" json:"Category"`
	Quantity            int             `gorm:"column:Quantity;not null" json:"Quantity"`
	SalePrice           decimal.Decimal `gorm:"column:SalePrice;type:decimal(10,2);not null" json:"SalePrice"`
	Total               decimal.Decimal `gorm:"column:Total;type:decimal(10,2);not null" json:"Total"`
	TotalDiscountAmount decimal.Decimal `gorm:"column:TotalDiscountAmount;type:decimal(10,2);default:0.00" json:"TotalDiscountAmount"`
	TransectionType     string          `gorm:"column:TransectionType;size:50" json:"TransectionType"`
}

func (InvoiceItem) TableName() string { return "tbl_invoiceitem" }
