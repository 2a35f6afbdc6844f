package carousel

// Plugin extends the engine without modifying it. Init receives the public
// API handle during Attach and may call any method or subscribe to events.
// Destroy must release everything Init acquired, in particular event
// subscriptions; it is called exactly once, during Carousel.Destroy, in
// reverse registration order.
type Plugin interface {
	Init(c *Carousel)
	Destroy()
}
