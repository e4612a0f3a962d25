package designpattern

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorator(t *testing.T) {
	tests := []struct {
		name  string
		pizza Pizza
		want  int
	}{
		{
			name:  "margherita_alone",
			pizza: Margherita{},
			want:  110,
		},
		{
			name:  "margherita_with_extra_cheese",
			pizza: NewExtraCheese(Margherita{}),
			want:  120,
		},
		{
			name:  "margherita_with_extra_cheese_and_mushroom",
			pizza: NewMushroom(NewExtraCheese(Margherita{})),
			want:  130,
		},
		{
			name:  "custom_topping",
			pizza: NewTopping(NewMushroom(Margherita{}), "Olives", 25),
			want:  145,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pizza.Cost())
		})
	}
}

func TestDecoratorCostIsIdempotent(t *testing.T) {
	p := NewMushroom(NewExtraCheese(Margherita{}))

	first := p.Cost()
	second := p.Cost()

	assert.Equal(t, first, second)
	assert.Equal(t, "Margherita + ExtraCheese + Mushroom", Describe(p))
}

func TestDecoratorOrderDoesNotChangeCost(t *testing.T) {
	a := NewMushroom(NewExtraCheese(Margherita{}))
	b := NewExtraCheese(NewMushroom(Margherita{}))

	assert.Equal(t, a.Cost(), b.Cost())
	assert.NotEqual(t, Describe(a), Describe(b))
}

func TestDecoratorNilDelegate(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrNilDelegate))
		assert.Contains(t, err.Error(), "ExtraCheese")
	}()

	NewExtraCheese(nil)
	t.Fatal("expected panic")
}

func TestWrap(t *testing.T) {
	p := Wrap(Margherita{}, NewExtraCheese, NewMushroom, NewMushroom)

	assert.Equal(t, 140, p.Cost())
	assert.Equal(t, "Margherita + ExtraCheese + Mushroom + Mushroom", Describe(p))

	outer, ok := p.(*Topping)
	require.True(t, ok)
	assert.Equal(t, "Mushroom", outer.String())
	assert.Equal(t, 130, outer.Unwrap().Cost())
}

func TestWrapWithoutToppings(t *testing.T) {
	p := Wrap(Margherita{})

	assert.Equal(t, Margherita{}, p)
	assert.Equal(t, "Margherita", Describe(p))
}

func ExampleNewMushroom() {
	pizza1 := NewExtraCheese(Margherita{})
	fmt.Println(pizza1.Cost())

	pizza2 := NewMushroom(NewExtraCheese(Margherita{}))
	fmt.Println(pizza2.Cost())
	// Output:
	// 120
	// 130
}
