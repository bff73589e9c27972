package entity

// Medication is a product in the catalog. Prices vary per pharmacy, so the
// medication carries one offer per pharmacy that stocks it.
type Medication struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Category             string            `json:"category"` // e.g. "Analgésique", "Anti-inflammatoire".
	Description          string            `json:"description,omitempty"`
	Dosage               string            `json:"dosage,omitempty"`
	PrescriptionRequired bool              `json:"prescriptionRequired"`
	Offers               []MedicationOffer `json:"offers,omitempty"`
}

// MedicationOffer is one pharmacy's price and availability for a medication.
type MedicationOffer struct {
	PharmacyID   string `json:"pharmacyId"`
	PharmacyName string `json:"pharmacyName"`
	PriceCents   int64  `json:"priceCents"`
	InStock      bool   `json:"inStock"`
}
