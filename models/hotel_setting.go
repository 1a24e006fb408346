package models

import "time"

type HotelSetting struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`
	Website string `gorm:"size:255" json:"website"`

	// Standard turnover times, display-only; availability math uses whole days.
	CheckInTime  string `gorm:"size:10;default:'12:00'" json:"checkInTime"`
	CheckOutTime string `gorm:"size:10;default:'11:00'" json:"checkOutTime"`

	TaxNumber string `gorm:"size:50" json:"taxNumber"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
