package users

import "strings"

// Name is the structured name of a user.
type Name struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	First string `json:"first"           yaml:"first"`
	Last  string `json:"last"            yaml:"last"`
}

// Picture holds avatar URLs in three sizes.
type Picture struct {
	Large     string `json:"large"     yaml:"large"`
	Medium    string `json:"medium"    yaml:"medium"`
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
}

// Login carries the account identifiers of a user.
type Login struct {
	UUID     string `json:"uuid"               yaml:"uuid"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

// User is one directory entry as served by the randomuser API.
type User struct {
	Name    Name    `json:"name"            yaml:"name"`
	Email   string  `json:"email"           yaml:"email"`
	Phone   string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	Nat     string  `json:"nat,omitempty"   yaml:"nat,omitempty"`
	Picture Picture `json:"picture"         yaml:"picture"`
	Login   Login   `json:"login"           yaml:"login"`
}

// ID returns the login UUID, or the email address for entries without one.
func (u User) ID() string {
	if u.Login.UUID != "" {
		return u.Login.UUID
	}
	return u.Email
}

// FullName returns "First Last".
func (u User) FullName() string {
	return strings.TrimSpace(u.Name.First + " " + u.Name.Last)
}

// FirstName returns the given name.
func (u User) FirstName() string {
	return u.Name.First
}

// IDOf is User.ID as a function value for list controllers.
func IDOf(u User) string { return u.ID() }

// FirstNameOf returns the first name, the field the directory search matches.
func FirstNameOf(u User) string { return u.FirstName() }

// LastNameOf returns the last name.
func LastNameOf(u User) string { return u.Name.Last }

// EmailOf returns the email address.
func EmailOf(u User) string { return u.Email }

// FullNameOf is User.FullName as a function value.
func FullNameOf(u User) string { return u.FullName() }

// response is the envelope of the randomuser API.
type response struct {
	Results []User `json:"results"`
}
