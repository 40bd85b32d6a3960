package structbasic

import "time"

type Profile struct {
	BirthAt time.Time
	Bio     *string
}

// MaybeName is the wrapper spelling of an optional name.
type MaybeName = *string

type User struct {
	Name     string
	Age      int
	Premium  *bool
	Tags     []string
	Scores   map[string]int
	Profile  Profile
	Ratio    float64
	Nick     MaybeName
	X, Y     int
	Internal string `fake:"-"`
	note     string
}

// DisplayName is derived, never stored.
func (u User) DisplayName() string {
	if u.Nick != nil {
		return *u.Nick
	}
	return u.Name
}

// Handler has no struct or enum shape and cannot be faked.
type Handler func(User) error
