package main

import (
	"fmt"

	designpattern "lldpatterns/Design-Pattern"
	"lldpatterns/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// Margherita + ExtraCheese
	pizza1 := designpattern.NewExtraCheese(designpattern.Margherita{})
	logger.Log.Debugf("pricing %s", designpattern.Describe(pizza1))
	fmt.Println(pizza1.Cost())

	// Margherita + ExtraCheese + Mushroom
	pizza2 := designpattern.NewMushroom(designpattern.NewExtraCheese(designpattern.Margherita{}))
	logger.Log.Debugf("pricing %s", designpattern.Describe(pizza2))
	fmt.Println(pizza2.Cost())
}
