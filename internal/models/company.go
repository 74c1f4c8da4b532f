package models

// CompanyInfo is the business profile printed on invoices (tbl_company_info).
type CompanyInfo struct {
	Sl          uint   `gorm:"column:sl;primaryKey" json:"sl"`
	CompanyName string `gorm:"column:CompanyName;size:100;not null" json:"CompanyName"`
	Address     string `gorm:"column:Address;type:text" json:"Address"`
	City        string `gorm:"column:City;size:50" json:"City"`
	State       string `gorm:"column:State;size:50" json:"State"`
	Pin         string `gorm:"column:Pin;size:10" json:"Pin"`
	Country     string `gorm:"column:Country;size:50" json:"Country"`
	Phone       string `gorm:"column:Phone;size:15" json:"Phone"`
	Email       string `gorm:"column:Email;size:100" json:"Email"`
	Gstin       string `gorm:"column:Gstin;size:20" json:"Gstin"`
	Website     string `gorm:"column:Website;size:100" json:"Website"`
}

func (CompanyInfo) TableName() string { return "tbl_company_info" }
