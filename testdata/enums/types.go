package enums

// Priority cases are deliberately not in alphabetical order: the factory
// must return the first declared case.
type Priority int

const (
	Second Priority = iota
	First
	Third
)

type Weekday string

const (
	Tuesday, Wednesday Weekday = "tue", "wed"
	Monday             Weekday = "mon"
)

// Empty has no cases at all.
type Empty int
