package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ImageList is the product image column. Writes always store a JSON array;
// reads still tolerate the legacy shapes found in old rows (JSON array,
// quoted string, plain URL) so one scan normalizes them all.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ImageList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = ImageList{}
		return nil
	case []byte:
		return l.parse(string(v))
	case string:
		return l.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into ImageList", value)
	}
}

func (l *ImageList) parse(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*l = ImageList{}
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err != nil {
			return err
		}
		*l = urls
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var url string
		if err := json.Unmarshal([]byte(raw), &url); err == nil {
			*l = ImageList{url}
			return nil
		}
	}
	*l = ImageList{raw}
	return nil
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  uint            `gorm:"index" json:"category_id"`
	Category    Category        `gorm:"foreignKey:CategoryID" json:"category"`
	Brand       string          `gorm:"index" json:"brand"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Images      ImageList       `gorm:"type:text" json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
