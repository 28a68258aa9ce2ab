package core

// FrameScheduler runs a callback on the host's next display refresh.
// The returned cancel func must be safe to call after the frame has run.
type FrameScheduler interface {
	Schedule(frame func()) (cancel func())
}

// InputSource delivers key presses and releases to a subscriber.
type InputSource interface {
	Subscribe(handler func(KeyEvent)) (unsubscribe func())
}

// Surface is the host's drawing area. Screen returns nil while there is no
// rendering context. A nil Surface, including a typed nil pointer, is
// rejected by the engine before Screen is called.
type Surface interface {
	Screen() *Screen
}
