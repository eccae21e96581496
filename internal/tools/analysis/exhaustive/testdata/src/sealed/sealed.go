package sealed

type Shape interface {
	isShape()
}

type Round interface {
	Shape
	round()
}

type Open interface {
	Area() float64
}

type Circle struct{}

type Square struct{}

type Triangle struct{ sides int }

func (Circle) isShape()    {}
func (Square) isShape()    {}
func (*Triangle) isShape() {}

func (Circle) round() {}

func (Square) Area() float64 { return 1 }

func complete(s Shape) {
	switch s.(type) {
	case Circle, Square, *Triangle:
	}
}

func missing(s Shape) {
	switch s.(type) { // want `missing cases in type switch on sealed.Shape: sealed.Square, sealed.Triangle`
	case Circle:
	}
}

func withDefault(s Shape) {
	switch v := s.(type) { // want `missing cases in type switch on sealed.Shape: sealed.Triangle`
	case Circle, Square:
	default:
		_ = v
	}
}

func viaInterface(s Shape) {
	switch s.(type) {
	case Round, Square, *Triangle:
	}
}

func nested(r Round) {
	switch r.(type) {
	case Circle:
	}
}

func notSealed(o Open) {
	switch o.(type) {
	case nil:
	}
}
