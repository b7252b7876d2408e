package domain

// Professional represents a bookable professional of the catalog.
// Records are immutable once created; the collection is only replaced as a whole.
type Professional struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	Specialty     string `json:"specialty"`
	Email         string `json:"email"`
}
