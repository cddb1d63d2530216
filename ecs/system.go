package ecs

// System represents a behavior executed against the World once per update.
// User-defined systems implement this interface and may carry their own
// state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
