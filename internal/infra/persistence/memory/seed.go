package memory

import "medifinder/internal/domain/entity"

// Coordinates are the actual street locations, so nearby search returns
// plausible distances for a user in central Paris.

func seedPharmacies() []*entity.Pharmacy {
	return []*entity.Pharmacy{
		{
			ID:        "1",
			Name:      "Pharmacie du Centre",
			Address:   "15 Rue de la République, 75001 Paris",
			Phone:     "01 42 36 75 89",
			Latitude:  48.8635,
			Longitude: 2.3430,
			Hours:     "8h30 - 19h00",
			Rating:    4.8,
			Services:  []string{"Vaccination", "Tests antigéniques", "Livraison"},
		},
		{
			ID:        "2",
			Name:      "Pharmacie Saint-Michel",
			Address:   "8 Boulevard Saint-Michel, 75005 Paris",
			Phone:     "01 43 25 61 48",
			Latitude:  48.8530,
			Longitude: 2.3440,
			Hours:     "9h00 - 20h00",
			Rating:    4.6,
			Services:  []string{"Vaccination", "Orthopédie"},
		},
		{
			ID:        "3",
			Name:      "Pharmacie Voltaire",
			Address:   "32 Avenue Voltaire, 75011 Paris",
			Phone:     "01 48 05 92 37",
			Latitude:  48.8620,
			Longitude: 2.3730,
			Hours:     "9h00 - 19h30",
			Rating:    4.7,
		},
		{
			ID:        "4",
			Name:      "Pharmacie Bastille",
			Address:   "45 Rue de la Bastille, 75004 Paris",
			Phone:     "01 42 77 83 92",
			Latitude:  48.8545,
			Longitude: 2.3690,
			Hours:     "8h00 - 22h00",
			Rating:    4.5,
			Services:  []string{"Livraison gratuite"},
		},
		{
			ID:        "5",
			Name:      "Pharmacie de Garde - Châtelet",
			Address:   "12 Rue de Rivoli, 75001 Paris",
			Phone:     "01 42 33 15 67",
			Latitude:  48.8575,
			Longitude: 2.3470,
			Hours:     "24h/24",
			OnDuty:    true,
			Rating:    4.3,
		},
		{
			ID:        "6",
			Name:      "Pharmacie de Garde - Opéra",
			Address:   "8 Boulevard des Capucines, 75009 Paris",
			Phone:     "01 47 42 88 19",
			Latitude:  48.8700,
			Longitude: 2.3320,
			Hours:     "Jusqu'à 2h00",
			OnDuty:    true,
			Rating:    4.4,
		},
	}
}

func seedMedications() []*entity.Medication {
	return []*entity.Medication{
		{
			ID:          "1",
			Name:        "Doliprane 1000mg",
			Category:    "Analgésique",
			Description: "Antalgique et antipyrétique efficace contre la douleur et la fièvre",
			Dosage:      "1000mg",
			Offers: []entity.MedicationOffer{
				{PharmacyID: "1", PharmacyName: "Pharmacie du Centre", PriceCents: 295, InStock: true},
				{PharmacyID: "2", PharmacyName: "Pharmacie Saint-Michel", PriceCents: 320, InStock: true},
				{PharmacyID: "4", PharmacyName: "Pharmacie Bastille", PriceCents: 450, InStock: true},
			},
		},
		{
			ID:          "2",
			Name:        "Advil 400mg",
			Category:    "Anti-inflammatoire",
			Description: "Anti-inflammatoire non stéroïdien pour douleurs et inflammations",
			Dosage:      "400mg",
			Offers: []entity.MedicationOffer{
				{PharmacyID: "1", PharmacyName: "Pharmacie du Centre", PriceCents: 380, InStock: true},
				{PharmacyID: "3", PharmacyName: "Pharmacie Voltaire", PriceCents: 620, InStock: false},
			},
		},
		{
			ID:          "3",
			Name:        "Aspégic 1000mg",
			Category:    "Analgésique",
			Description: "Acide acétylsalicylique pour douleurs et fièvre",
			Dosage:      "1000mg",
			Offers: []entity.MedicationOffer{
				{PharmacyID: "2", PharmacyName: "Pharmacie Saint-Michel", PriceCents: 215, InStock: true},
				{PharmacyID: "4", PharmacyName: "Pharmacie Bastille", PriceCents: 390, InStock: true},
			},
		},
		{
			ID:                   "4",
			Name:                 "Amoxicilline 500mg",
			Category:             "Antibiotique",
			Description:          "Antibiotique de la famille des bêta-lactamines",
			Dosage:               "500mg",
			PrescriptionRequired: true,
			Offers: []entity.MedicationOffer{
				{PharmacyID: "1", PharmacyName: "Pharmacie du Centre", PriceCents: 680, InStock: true},
				{PharmacyID: "5", PharmacyName: "Pharmacie de Garde - Châtelet", PriceCents: 710, InStock: true},
			},
		},
	}
}

func seedPharmacists() []*entity.Pharmacist {
	return []*entity.Pharmacist{
		{
			ID:                     "1",
			Name:                   "Dr. Sophie Martin",
			Specialty:              "Pharmacien titulaire",
			Rating:                 4.9,
			Reviews:                127,
			Online:                 true,
			NextAvailable:          "Immédiatement",
			ConsultationPriceCents: 1500,
		},
		{
			ID:                     "2",
			Name:                   "Dr. Pierre Dubois",
			Specialty:              "Pharmacien spécialisé",
			Rating:                 4.8,
			Reviews:                89,
			Online:                 true,
			NextAvailable:          "Dans 5 min",
			ConsultationPriceCents: 1800,
		},
		{
			ID:                     "3",
			Name:                   "Dr. Marie Leroy",
			Specialty:              "Pharmacien conseil",
			Rating:                 4.7,
			Reviews:                156,
			Online:                 false,
			NextAvailable:          "14h30",
			ConsultationPriceCents: 2000,
		},
	}
}

func seedDoseReminders() []*entity.DoseReminder {
	return []*entity.DoseReminder{
		{
			ID:            "1",
			Medication:    "Doliprane 1000mg",
			Dosage:        "1 comprimé",
			Frequency:     "3 fois par jour",
			NextDose:      "14:00",
			Progress:      65,
			DaysRemaining: 7,
		},
		{
			ID:            "2",
			Medication:    "Amoxicilline 500mg",
			Dosage:        "1 gélule",
			Frequency:     "2 fois par jour",
			NextDose:      "20:00",
			Progress:      80,
			DaysRemaining: 2,
		},
	}
}
