package models

// Party is a customer or vendor contact record (tbl_customer). Phone is a
// human-facing lookup key, not guaranteed unique.
type Party struct {
	Sl           uint   `gorm:"column:sl;primaryKey" json:"sl"`
	Name         string `gorm:"column:Name;size:100;not null" json:"Name"`
	Phone        string `gorm:"column:phone;size:15;not null" json:"phone"`
	Email        string `gorm:"column:Email;size:100" json:"Email"`
	Gstin        string `gorm:"column:Gstin;size:20" json:"Gstin"`
	CompanyName  string `gorm:"column:CompanyName;size:100" json:"CompanyName"`
	Address      string `gorm:"column:Address;type:text" json:"Address"`
	City         string `gorm:"column:City;size:50" json:"City"`
	State        string `gorm:"column:State;size:50" json:"State"`
	Pin          string `gorm:"column:Pin;size:10" json:"Pin"`
	Country      string `gorm:"column:Country;size:50" json:"Country"`
	CustomerType string `gorm:"column:CustomerType;size:50" json:"CustomerType"`
}

func (Party) TableName() string { return "tbl_customer" }
