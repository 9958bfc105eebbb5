package product

import "errors"

var (
	ErrUnknownFlow    = errors.New("unknown flow type")
	ErrUnknownProduct = errors.New("unknown product name")
)

type FlowType string

const (
	FlowPioneer  FlowType = "pioneer"
	FlowRepeater FlowType = "repeater"
)

type Product struct {
	ID                uint64   `gorm:"primaryKey;column:id" json:"-"`
	Name              string   `gorm:"column:name;size:128;not null" json:"name"`
	MaxAmount         int64    `gorm:"column:max_amount;not null" json:"max_amount"`
	TermDays          int      `gorm:"column:term_days;not null" json:"term_days"`
	InterestRateDaily float64  `gorm:"column:interest_rate_daily;type:decimal(6,4);not null" json:"interest_rate_daily"`
	FlowType          FlowType `gorm:"column:flow_type;size:16;not null" json:"-"`
}

func (Product) TableName() string { return "products" }
