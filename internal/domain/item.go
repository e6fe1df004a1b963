package domain

// Item is a named leaf stored in a container
type Item struct {
	ItemName         string        `json:"itemName" yaml:"itemName"`
	ItemLocation     Location      `json:"itemLocation" yaml:"itemLocation"`
	ItemMeasurements *Measurements `json:"itemMeasurements,omitempty" yaml:"itemMeasurements,omitempty"`
}

// Measurements describes the physical size of an item
type Measurements struct {
	Unit string  `json:"unit" yaml:"unit"` // cm, in, ...
	Size float64 `json:"size" yaml:"size"`
}
