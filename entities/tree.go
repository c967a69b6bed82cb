package entities

import "errors"

type HealthStatus string

const (
	HealthExcellent HealthStatus = "Excellent"
	HealthGood      HealthStatus = "Good"
	HealthFair      HealthStatus = "Fair"
	HealthPoor      HealthStatus = "Poor"
	HealthCritical  HealthStatus = "Critical"
)

func AllHealthStatuses() []HealthStatus {
	return []HealthStatus{HealthExcellent, HealthGood, HealthFair, HealthPoor, HealthCritical}
}

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthExcellent, HealthGood, HealthFair, HealthPoor, HealthCritical:
		return true
	}
	return false
}

type ProductionLevel string

const (
	ProductionNone     ProductionLevel = "None"
	ProductionLow      ProductionLevel = "Low"
	ProductionMedium   ProductionLevel = "Medium"
	ProductionHigh     ProductionLevel = "High"
	ProductionAbundant ProductionLevel = "Abundant"
)

func AllProductionLevels() []ProductionLevel {
	return []ProductionLevel{ProductionNone, ProductionLow, ProductionMedium, ProductionHigh, ProductionAbundant}
}

func (p ProductionLevel) Valid() bool {
	switch p {
	case ProductionNone, ProductionLow, ProductionMedium, ProductionHigh, ProductionAbundant:
		return true
	}
	return false
}

type GeoLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TreeRecord is one inventory entry. ID and Timestamp are assigned by the
// store at creation and never change; duplicates on TreeNumber are allowed.
type TreeRecord struct {
	ID                 string          `json:"id"`
	TreeNumber         string          `json:"treeNumber"`
	TreeName           string          `json:"treeName"`
	Species            string          `json:"species"`
	Health             HealthStatus    `json:"health"`
	HealthDescription  string          `json:"healthDescription,omitempty"`
	Production         ProductionLevel `json:"production"`
	ProductionQuantity *float64        `json:"productionQuantity,omitempty"`
	Photo              string          `json:"photo,omitempty"` // data-URI base64
	Location           *GeoLocation    `json:"location,omitempty"`
	Timestamp          int64           `json:"timestamp"` // ms since epoch
	Notes              string          `json:"notes,omitempty"`
}

var (
	ErrTreeNumberRequired = errors.New("tree number is required")
	ErrTreeNameRequired   = errors.New("tree name is required")
	ErrSpeciesRequired    = errors.New("species is required")
	ErrBadHealth          = errors.New("invalid health status")
	ErrBadProduction      = errors.New("invalid production level")
	ErrNegativeQuantity   = errors.New("production quantity must be non-negative")
)

func (r *TreeRecord) Validate() error {
	if r.TreeNumber == "" {
		return ErrTreeNumberRequired
	}
	if r.TreeName == "" {
		return ErrTreeNameRequired
	}
	if r.Species == "" {
		return ErrSpeciesRequired
	}
	if !r.Health.Valid() {
		return ErrBadHealth
	}
	if !r.Production.Valid() {
		return ErrBadProduction
	}
	if r.ProductionQuantity != nil && *r.ProductionQuantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
