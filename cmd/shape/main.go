package main

import (
	designpattern "lldpatterns/Design-Pattern"
	"lldpatterns/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	factory := designpattern.NewShapeFactory(nil)

	shape, err := factory.GetShape(string(designpattern.ShapeCircle))
	if err != nil {
		logger.Log.WithField("known", factory.Kinds()).Fatal(err)
	}
	logger.Log.WithField("id", shape.ID()).Debug("shape created")
	shape.Draw()
}
