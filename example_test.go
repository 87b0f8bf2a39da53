package eventbus_test

import (
	"fmt"

	"github.com/dep2p/go-eventbus"
)

type orderPlaced struct {
	ID int
}

func onOrder(e orderPlaced) error {
	fmt.Println("order", e.ID)
	return nil
}

func Example() {
	bus := eventbus.NewBus()

	eventbus.Register(bus, onOrder)
	eventbus.Register(bus, onOrder)
	eventbus.Register(bus, func(e eventbus.UnroutedEvent) error {
		if n, ok := eventbus.TryAs[uint64](e); ok {
			fmt.Println("lost number", n)
			return nil
		}
		fmt.Println("not for me:", e.Value())
		return nil
	})

	_ = eventbus.Post(bus, orderPlaced{ID: 1})
	_ = eventbus.Post(bus, uint64(123123123))
	_ = eventbus.Post(bus, "Hello World")

	eventbus.UnregisterAll[orderPlaced](bus)
	_ = eventbus.Post(bus, orderPlaced{ID: 2})
	// Output:
	// order 1
	// lost number 123123123
	// not for me: Hello World
	// not for me: {2}
}
