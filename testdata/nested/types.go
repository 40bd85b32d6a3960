package nested

type Root struct {
	Child  Child
	Leaves []Leaf
}

type Child struct {
	Leaf *Leaf
}

type Leaf struct {
	ID int
}
