package users

import "strconv"

// User is a single upstream user record.
type User struct {
	ID        int    `json:"id"        yaml:"id"`
	FirstName string `json:"firstname" yaml:"firstname"`
	LastName  string `json:"lastname"  yaml:"lastname"`
	Email     string `json:"email"     yaml:"email"`
	Phone     string `json:"phone"     yaml:"phone"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
}

// RecordSet is the full ordered list of users available for display.
type RecordSet []User

// Row returns the display cells of u in column order:
// id, first name, last name, phone, email, updated at.
func (u User) Row() []string {
	return []string{
		strconv.Itoa(u.ID),
		u.FirstName,
		u.LastName,
		u.Phone,
		u.Email,
		u.UpdatedAt,
	}
}
