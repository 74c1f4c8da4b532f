package models

import "github.com/shopspring/decimal"

// Product is a catalog row (tbl_products). Invoices copy name/category/price at
// sale time rather than referencing these rows.
type Product struct {
	Sl                uint            `gorm:"column:sl;primaryKey" json:"sl"`
	ProductName       string          `gorm:"column:ProductName;size:150;not null" json:"ProductName"`
	Description       string          `gorm:"column:Description;type:text" json:"Description"`
	Category          string          `gorm:"column:Category;size:100;not null" json:"Category"`
	HsnCode           string          `gorm:"column:HsnCode;size:20" json:"HsnCode"`
	Quantity          int             `gorm:"column:Quantity;default:0" json:"Quantity"`
	ManufacturePrice  decimal.Decimal `gorm:"column:ManufacturePrice;type:decimal(10,2);default:0.00" json:"ManufacturePrice"`
	Cgst              decimal.Decimal `gorm:"column:Cgst;type:decimal(10,2);default:0.00" json:"Cgst"`
	Sgst              decimal.Decimal `gorm:"column:Sgst;type:decimal(10,2);default:0.00" json:"Sgst"`
	Igst              decimal.Decimal `gorm:"column:Igst;type:decimal(10,2);default:0.00" json:"Igst"`
	TotalGst          decimal.Decimal `gorm:"column:TotalGst;type:decimal(10,2);default:0.00" json:"TotalGst"`
	Expiry            string          `gorm:"column:Expiry;size:20" json:"Expiry"`
	MinSellPrice      decimal.Decimal `gorm:"column:MinSellPrice;type:decimal(10,2);default:0.00" json:"MinSellPrice"`
	WholeSaleQuantity int             `gorm:"column:WholeSaleQuantity;default:0" json:"WholeSaleQuantity"`
	WholeSalePrice    decimal.Decimal `gorm:"column:WholeSalePrice;type:decimal(10,2);default:0.00" json:"WholeSalePrice"`
	StoreLocation     string          `gorm:"column:StoreLocation;size:100" json:"StoreLocation"`
	BaseUnit          string          `gorm:"column:BaseUnit;size:20" json:"BaseUnit"`
	BaseUnitPrice     decimal.Decimal `gorm:"column:BaseUnitPrice;type:decimal(10,2);default:0.00" json:"BaseUnitPrice"`
}

func (Product) TableName() string { return "tbl_products" }
