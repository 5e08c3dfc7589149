package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// OrderBook is the top-level JSON structure for an order-book import file.
// Refs are file-local handles: orders point at customers and varieties by
// ref, and the converter swaps them for real row IDs.
type OrderBook struct {
	Customers []CustomerImport `json:"customers"`
	Varieties []VarietyImport  `json:"varieties"`
	Orders    []OrderImport    `json:"orders"`
}

// CustomerImport defines one delivery destination in the import file.
type CustomerImport struct {
	Ref     string `json:"ref"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// VarietyImport defines one crop profile in the import file. Growth numbers
// may be omitted; missing values import as zero.
type VarietyImport struct {
	Ref          string `json:"ref"`
	Name         string `json:"name"`
	HarvestDays  int    `json:"harvest_days,omitempty"`
	BlackoutDays int    `json:"blackout_days,omitempty"`
	SoakHours    int    `json:"soak_hours,omitempty"`
}

// OrderImport defines one standing order in the import file.
type OrderImport struct {
	CustomerRef  string `json:"customer_ref"`
	VarietyRef   string `json:"variety_ref"`
	Quantity     int    `json:"quantity"`
	DeliveryDate string `json:"delivery_date"`
	Status       string `json:"status,omitempty"`
}

// LoadOrderBook reads and parses an order-book JSON file.
func LoadOrderBook(path string) (*OrderBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var book OrderBook
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &book, nil
}
