// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Session represents the authenticated user's identity and profile as held
// client-side. It is treated as an immutable value: mutations produce a new
// Session via Clone/Apply rather than editing fields in place.
type Session struct {
	ID          string    `json:"id"`                    // Opaque identifier synthesized at login or registration.
	Email       string    `json:"email"`                 // Primary contact email, doubles as the login identifier.
	FirstName   string    `json:"firstName"`             // Given name.
	LastName    string    `json:"lastName"`              // Family name.
	Phone       string    `json:"phone,omitempty"`       // Optional contact phone number.
	DateOfBirth string    `json:"dateOfBirth,omitempty"` // Optional date of birth, "YYYY-MM-DD".
	Allergies   []string  `json:"allergies,omitempty"`   // Optional list of known allergy names.
	Treatments  []string  `json:"treatments,omitempty"`  // Optional references to active treatments.
	Doctor      string    `json:"doctor,omitempty"`      // Optional primary-doctor name.
	CreatedAt   time.Time `json:"createdAt"`             // When this session's account was created.
	UpdatedAt   time.Time `json:"updatedAt"`             // Last modification to the profile.
}

// SessionPatch is a partial update against a Session. All fields are
// optional; nil means "leave unchanged".
type SessionPatch struct {
	Email       *string   `json:"email,omitempty"`
	FirstName   *string   `json:"firstName,omitempty"`
	LastName    *string   `json:"lastName,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	DateOfBirth *string   `json:"dateOfBirth,omitempty"`
	Allergies   *[]string `json:"allergies,omitempty"`
	Treatments  *[]string `json:"treatments,omitempty"`
	Doctor      *string   `json:"doctor,omitempty"`
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	cp := *s
	if s.Allergies != nil {
		cp.Allergies = append([]string(nil), s.Allergies...)
	}
	if s.Treatments != nil {
		cp.Treatments = append([]string(nil), s.Treatments...)
	}

	return &cp
}

// Apply merges the patch into a copy of the session and returns the copy.
// The receiver is left untouched.
func (s *Session) Apply(patch *SessionPatch) *Session {
	merged := s.Clone()
	if patch == nil {
		return merged
	}

	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.FirstName != nil {
		merged.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		merged.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		merged.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Allergies != nil {
		merged.Allergies = append([]string(nil), (*patch.Allergies)...)
	}
	if patch.Treatments != nil {
		merged.Treatments = append([]string(nil), (*patch.Treatments)...)
	}
	if patch.Doctor != nil {
		merged.Doctor = *patch.Doctor
	}
	merged.UpdatedAt = time.Now()

	return merged
}
