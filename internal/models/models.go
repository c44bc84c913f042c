package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is stored as a JSON text column so the same model works on
// postgres and the in-memory sqlite used in tests.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

const DefaultPrice = "Price on Request"

const (
	StatusAvailable         = "Available"
	StatusSold              = "Sold"
	StatusUnderConstruction = "Under Construction"
)

var PropertyCategories = []string{"Upcoming Project", "New Launch", "Luxury Homes", "All Property"}

var PropertyStatuses = []string{StatusAvailable, StatusSold, StatusUnderConstruction}

func ValidCategory(s string) bool {
	for _, c := range PropertyCategories {
		if s == c {
			return true
		}
	}
	return false
}

func ValidStatus(s string) bool {
	for _, st := range PropertyStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type Admin struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Property struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"not null"                 json:"title"`
	Description string     `gorm:"not null"                 json:"description"`
	City        string     `gorm:"not null"                 json:"city"`
	Price       string     `gorm:"not null"                 json:"price"`
	Categories  StringList `gorm:"type:text"                json:"categories"`
	Images      StringList `gorm:"type:text"                json:"images"`
	Featured    bool       `gorm:"default:false"            json:"featured"`
	Status      string     `gorm:"not null"                 json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
