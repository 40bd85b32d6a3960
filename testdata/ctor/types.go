package ctor

// Account's constructor takes parameters in the opposite order of the field
// declarations; generation must follow the constructor.
type Account struct {
	Name string
	Age  int
}

func NewAccount(age int, name string) Account {
	return Account{Name: name, Age: age}
}

// Document only has a decoding constructor, which never seeds generation.
type Document struct {
	Body string
}

func NewDocument(data []byte) Document {
	return Document{Body: string(data)}
}

type Report struct {
	//fake:default "acme"
	Owner string
	Pages int
}

func NewReport(owner string, pages int) Report {
	return Report{Owner: owner, Pages: pages}
}

// Token's constructor has a parameter with no matching field.
type Token struct {
	Value string
}

func NewToken(value string, ttl int) Token {
	return Token{Value: value}
}
