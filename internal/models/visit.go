package models

import (
	"strings"
	"time"
)

type VisitType string
type StoreCategory string
type LeadType string

const (
	VisitNew VisitType = "NEW VISIT"
	VisitRe  VisitType = "RE VISIT"

	CategoryMT     StoreCategory = "MT"
	CategoryHoReCa StoreCategory = "HoReCa"

	LeadHot  LeadType = "HOT"
	LeadWarm LeadType = "WARM"
	LeadCold LeadType = "COLD"
	LeadDead LeadType = "DEAD"
)

// ProductNames is the fixed checkbox set on the report form. The order here
// is the canonical order of the comma-joined products column.
var ProductNames = [6]string{
	"CIGARETTE",
	"ROLLING PAPERS",
	"CIGARS",
	"HOOKAH",
	"ZIPPO LIGHTERS",
	"NONE",
}

// JoinProducts builds the products column value from the checked flags,
// preserving canonical order regardless of input order.
func JoinProducts(checked []string) string {
	set := map[string]struct{}{}
	for _, name := range checked {
		set[name] = struct{}{}
	}

	var picked []string
	for _, name := range ProductNames {
		if _, ok := set[name]; ok {
			picked = append(picked, name)
		}
	}
	return strings.Join(picked, ", ")
}

type StoreVisit struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	VisitDate time.Time `gorm:"type:date;not null"`
	VisitTime string    `gorm:"size:8;not null"` // HH:MM:SS, sorts lexicographically
	SRName    string    `gorm:"size:255;not null"`

	// soft back-reference to User.Username, no FK
	Username string `gorm:"size:50"`

	StoreName     string        `gorm:"size:255;not null"`
	VisitType     VisitType     `gorm:"type:varchar(20);not null"`
	StoreCategory StoreCategory `gorm:"type:varchar(20);not null"`
	PhoneNumber   string        `gorm:"size:50;not null"`
	LeadType      LeadType      `gorm:"type:varchar(10);not null"`
	FollowUpDate  string        `gorm:"size:20"`
	Products      string        `gorm:"size:255;not null"`
	OrderDetails  string        `gorm:"type:text"`

	Latitude  *float64
	Longitude *float64
	MapsURL   string `gorm:"size:255"`

	LocationRecordedAnswer string `gorm:"size:3;not null"` // YES / NO

	// base64 JPEG data URI, stored inline
	ImageData string `gorm:"type:text;not null"`

	CreatedAt time.Time
}
