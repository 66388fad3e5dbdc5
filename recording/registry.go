package recording

import "github.com/gogpu/tin"

func init() {
	tin.RegisterRenderer("recording", func() tin.Renderer {
		return NewRecorder()
	})
}
