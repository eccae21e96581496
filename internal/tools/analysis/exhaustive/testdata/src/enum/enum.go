package enum

type Color int

const (
	Red Color = iota
	Green
	Blue
)

type Single uint8

const Only Single = 0

type Name string

const (
	First  Name = "first"
	Second Name = "second"
)

func complete(c Color) {
	switch c {
	case Red, Green, Blue:
	}
}

func missing(c Color) {
	switch c { // want `missing cases in switch on enum.Color: Blue`
	case Red, Green:
	}
}

func withDefault(c Color) {
	switch c { // want `missing cases in switch on enum.Color: Green, Blue`
	case Red:
	default:
	}
}

func single(s Single) {
	switch s {
	}
}

func notInteger(n Name) {
	switch n {
	case First:
	}
}

func untagged(c Color) {
	switch {
	case c == Red:
	}
}
