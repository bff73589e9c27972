package entity

// Pharmacy is a physical pharmacy that can be searched, displayed on the
// map, and chosen as a pickup point for reservations.
type Pharmacy struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Hours     string   `json:"hours"`              // Opening hours text, e.g. "8h30 - 19h30".
	OnDuty    bool     `json:"onDuty"`             // "Pharmacie de garde": open outside normal hours.
	Rating    float64  `json:"rating"`             // Average customer rating, 0-5.
	Services  []string `json:"services,omitempty"` // Offered services, e.g. vaccination, tests.
}

// PharmacyDistance pairs a pharmacy with its distance from a search point.
type PharmacyDistance struct {
	Pharmacy *Pharmacy `json:"pharmacy"`
	Meters   float64   `json:"meters"`
}
