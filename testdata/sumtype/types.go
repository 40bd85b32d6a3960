package sumtype

type Shape interface {
	isShape()
}

var _ Shape = Circle{}

type Circle struct {
	Radius float64
}

func (Circle) isShape() {}

type Rect struct {
	W, H float64
}

func (Rect) isShape() {}

type Payment interface {
	isPayment()
}

type Card struct {
	Number string
}

type CardPayment struct {
	Card Card
}

func (CardPayment) isPayment() {}

type CashPayment struct{}

func (CashPayment) isPayment() {}
