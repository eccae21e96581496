package scoped

import (
	"enum"
	"sealed"
)

type Local interface{ local() }

type One struct{}
type Two struct{}

func (One) local() {}
func (Two) local() {}

func foreignInterface(s sealed.Shape) {
	switch s.(type) {
	case sealed.Circle:
	}
}

func foreignEnum(c enum.Color) {
	switch c {
	case enum.Red:
	}
}

func local(l Local) {
	switch l.(type) { // want `missing cases in type switch on scoped.Local: scoped.Two`
	case One:
	}
}
