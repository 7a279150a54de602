package models

// User is a Cosyll account with its public profile.
type User struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email,omitempty"`
	Bio          string        `json:"bio,omitempty"`
	URLs         []string      `json:"urls,omitempty"`
	Institutions []Institution `json:"institutions,omitempty"`
	Syllabi      []Syllabus    `json:"syllabi,omitempty"`
	Collections  []Collection  `json:"collections,omitempty"`
}

// Ref returns the owner reference for the user.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}

// UserListing is the payload of the user listing endpoint.
type UserListing struct {
	Users []User `json:"users"`
}
