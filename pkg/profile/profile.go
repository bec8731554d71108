// Package profile holds the read-only practice roster types.
package profile

// UserProfile identifies one member of the practice. Profiles are fixed
// reference data; selecting one loads that user's note collection.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Specialty string    `json:"specialty"`
	Initials  string    `json:"initials"`
	Gradient  [2]string `json:"gradient"`
}
