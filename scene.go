package tin

// Scene issues drawing calls once per frame and reacts to input.
type Scene interface {
	// Setup runs once, before the context is prepared.
	Setup()
	// Update runs once per frame between PrepareForUpdate and
	// ProcessDrawCalls.
	Update()
	// OnEvent receives each input event after the frame is presented.
	OnEvent(e Event)
}

// SceneFuncs adapts plain functions to Scene. Nil fields are skipped.
type SceneFuncs struct {
	SetupFunc   func()
	UpdateFunc  func()
	OnEventFunc func(Event)
}

var _ Scene = SceneFuncs{}

func (s SceneFuncs) Setup() {
	if s.SetupFunc != nil {
		s.SetupFunc()
	}
}

func (s SceneFuncs) Update() {
	if s.UpdateFunc != nil {
		s.UpdateFunc()
	}
}

func (s SceneFuncs) OnEvent(e Event) {
	if s.OnEventFunc != nil {
		s.OnEventFunc(e)
	}
}
