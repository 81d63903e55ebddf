package database

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"field-sales/internal/models"

	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// VisitInput carries one form submission into the persistence layer.
// Everything arrives as strings; parsing and coercion happen here.
type VisitInput struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM:SS

	SRName   string
	Username string

	StoreName     string
	VisitType     string
	StoreCategory string
	PhoneNumber   string
	LeadType      string
	FollowUpDate  string
	Products      string
	OrderDetails  string

	Latitude  string // decimal degrees, empty when not captured
	Longitude string
	MapsURL   string

	LocationRecordedAnswer string
	ImageData              string // base64 JPEG data URI
}

// SaveVisit validates and stores one visit. Nothing is written unless every
// check passes; the returned record carries the generated ID.
func SaveVisit(in VisitInput) (*models.StoreVisit, error) {
	required := []struct {
		field string
		value string
	}{
		{"date", in.Date},
		{"time", in.Time},
		{"sr_name", in.SRName},
		{"store_name", in.StoreName},
		{"visit_type", in.VisitType},
		{"store_category", in.StoreCategory},
		{"phone_number", in.PhoneNumber},
		{"lead_type", in.LeadType},
		{"location_recorded_answer", in.LocationRecordedAnswer},
		{"image_data", in.ImageData},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, missingField(r.field)
		}
	}

	visitDate, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	visitTime, err := time.Parse(timeLayout, in.Time)
	if err != nil {
		return nil, &ValidationError{Field: "time", Reason: "expected HH:MM:SS"}
	}

	lat, err := parseCoord("latitude", in.Latitude)
	if err != nil {
		return nil, err
	}
	lon, err := parseCoord("longitude", in.Longitude)
	if err != nil {
		return nil, err
	}

	visit := models.StoreVisit{
		VisitDate:              visitDate,
		VisitTime:              visitTime.Format(timeLayout),
		SRName:                 in.SRName,
		Username:               in.Username,
		StoreName:              in.StoreName,
		VisitType:              models.VisitType(in.VisitType),
		StoreCategory:          models.StoreCategory(in.StoreCategory),
		PhoneNumber:            in.PhoneNumber,
		LeadType:               models.LeadType(in.LeadType),
		FollowUpDate:           in.FollowUpDate,
		Products:               in.Products,
		OrderDetails:           in.OrderDetails,
		Latitude:               lat,
		Longitude:              lon,
		MapsURL:                in.MapsURL,
		LocationRecordedAnswer: in.LocationRecordedAnswer,
		ImageData:              in.ImageData,
	}

	if err := DB.Create(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

func parseCoord(field, value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, &ValidationError{Field: field, Reason: "not a number"}
	}
	return &f, nil
}

// AllVisits returns every visit, most recent first.
func AllVisits() ([]models.StoreVisit, error) {
	var visits []models.StoreVisit
	err := DB.Order("visit_date DESC, visit_time DESC").Find(&visits).Error
	return visits, err
}

// AllStoreNames returns the distinct store names across all visits, in
// storage order. Feeds the auto-fill search box.
func AllStoreNames() ([]string, error) {
	var names []string
	err := DB.Model(&models.StoreVisit{}).Distinct().Pluck("store_name", &names).Error
	return names, err
}

// LastVisitByStore returns the most recent visit for an exact store name,
// or ErrVisitNotFound.
func LastVisitByStore(storeName string) (*models.StoreVisit, error) {
	var visit models.StoreVisit
	err := DB.Where("store_name = ?", storeName).
		Order("visit_date DESC, visit_time DESC").
		First(&visit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// VisitsByUser returns all visits reported under a username, most recent first.
func VisitsByUser(username string) ([]models.StoreVisit, error) {
	var visits []models.StoreVisit
	err := DB.Where("username = ?", username).
		Order("visit_date DESC, visit_time DESC").
		Find(&visits).Error
	return visits, err
}

// UpdateLeadStatus changes lead_type on one visit and nothing else.
func UpdateLeadStatus(visitID uint, status models.LeadType) error {
	var visit models.StoreVisit
	if err := DB.First(&visit, visitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVisitNotFound
		}
		return err
	}

	return DB.Model(&visit).Update("lead_type", status).Error
}
