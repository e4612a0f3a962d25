package designpattern

import (
	"errors"
	"fmt"
	"strings"
)

// @Note: 动态地给一个对象添加一些额外的职责, 比生成子类更为灵活
// @Note: 每个装饰器只持有一个被装饰对象, 组成一条线性链

// ErrNilDelegate is the panic value (wrapped) when a topping is built around nothing.
var ErrNilDelegate = errors.New("topping has no pizza to wrap")

type Pizza interface {
	Cost() int
}

// Margherita is the base of every chain.
type Margherita struct{}

func (Margherita) Cost() int {
	return 110
}

func (Margherita) String() string {
	return "Margherita"
}

// Topping wraps exactly one pizza and adds a fixed surcharge on top of it.
type Topping struct {
	pizza     Pizza
	name      string
	surcharge int
}

func NewTopping(p Pizza, name string, surcharge int) *Topping {
	if p == nil {
		panic(fmt.Errorf("%w: %s", ErrNilDelegate, name))
	}
	return &Topping{
		pizza:     p,
		name:      name,
		surcharge: surcharge,
	}
}

func (t *Topping) Cost() int {
	return t.pizza.Cost() + t.surcharge
}

// Unwrap returns the wrapped pizza
func (t *Topping) Unwrap() Pizza {
	return t.pizza
}

func (t *Topping) String() string {
	return t.name
}

func NewExtraCheese(p Pizza) Pizza {
	return NewTopping(p, "ExtraCheese", 10)
}

func NewMushroom(p Pizza) Pizza {
	return NewTopping(p, "Mushroom", 10)
}

// ToppingFunc matches NewExtraCheese and NewMushroom so they can be passed to Wrap.
type ToppingFunc func(Pizza) Pizza

// Wrap applies toppings from the inside out: the first one wraps base,
// the last one ends up outermost.
func Wrap(base Pizza, toppings ...ToppingFunc) Pizza {
	p := base
	for _, add := range toppings {
		p = add(p)
	}
	return p
}

// Describe renders a chain base first, e.g. "Margherita + ExtraCheese + Mushroom".
func Describe(p Pizza) string {
	var names []string
	for p != nil {
		names = append(names, fmt.Sprint(p))
		t, ok := p.(*Topping)
		if !ok {
			break
		}
		p = t.Unwrap()
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, " + ")
}
