package domain

// User is the public profile exposed to the rest of the system. The password
// hash lives only on Credential and is stripped before a user leaves the
// account store.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// Credential is the record stored in the users table: the public profile plus
// the bcrypt password hash.
type Credential struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched; email and id are not patchable.
type ProfilePatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
}

// Apply merges the patch into a user and returns the result.
func (p ProfilePatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.City != nil {
		u.City = *p.City
	}
	if p.State != nil {
		u.State = *p.State
	}
	if p.ZipCode != nil {
		u.ZipCode = *p.ZipCode
	}
	return u
}
