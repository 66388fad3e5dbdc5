package script

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"
	"github.com/gogpu/tin"
)

// register installs the drawing API into v. Every drawing function
// enqueues on s's context.
func (s *LuaScene) register(v *vm) {
	// Colors and brush
	v.setFunction("background", s.background, 0, true)
	v.setFunction("fill", s.fill, 0, true)
	v.setFunction("stroke", s.stroke, 0, true)
	v.setFunction("fill_enable", s.noArgs(s.dc.FillEnable), 0, false)
	v.setFunction("fill_disable", s.noArgs(s.dc.FillDisable), 0, false)
	v.setFunction("stroke_enable", s.noArgs(s.dc.StrokeEnable), 0, false)
	v.setFunction("stroke_disable", s.noArgs(s.dc.StrokeDisable), 0, false)
	v.setFunction("line_width", s.numbers("line_width", 1, func(a []float64) { s.dc.LineWidth(a[0]) }), 1, false)
	v.setFunction("alpha", s.numbers("alpha", 1, func(a []float64) { s.dc.SetAlpha(a[0]) }), 1, false)

	// Shapes
	v.setFunction("rect", s.numbers("rect", 4, func(a []float64) {
		s.dc.DrawRect(a[0], a[1], a[2], a[3])
	}), 4, false)
	v.setFunction("rounded_rect", s.numbers("rounded_rect", 6, func(a []float64) {
		s.dc.DrawRoundedRect(tin.Rect{X: a[0], Y: a[1], Width: a[2], Height: a[3]}, a[4], a[5])
	}), 6, false)
	v.setFunction("line", s.numbers("line", 4, func(a []float64) {
		s.dc.DrawLine(a[0], a[1], a[2], a[3])
	}), 4, false)
	v.setFunction("triangle", s.numbers("triangle", 6, func(a []float64) {
		s.dc.DrawTriangle(a[0], a[1], a[2], a[3], a[4], a[5])
	}), 6, false)
	v.setFunction("ellipse", s.numbers("ellipse", 4, func(a []float64) {
		s.dc.DrawEllipse(a[0], a[1], a[2], a[3])
	}), 4, false)
	v.setFunction("arc", s.numbers("arc", 5, func(a []float64) {
		s.dc.DrawArc(a[0], a[1], a[2], a[3], a[4])
	}), 5, false)
	v.setFunction("text", s.text, 3, true)
	v.setFunction("image", s.image, 3, true)

	// Paths
	v.setFunction("path_begin", s.noArgs(s.dc.PathBegin), 0, false)
	v.setFunction("vertex", s.numbers("vertex", 2, func(a []float64) { s.dc.PathVertex(a[0], a[1]) }), 2, false)
	v.setFunction("curve", s.numbers("curve", 6, func(a []float64) {
		s.dc.PathAddCurve(tin.Pt(a[0], a[1]), tin.Pt(a[2], a[3]), tin.Pt(a[4], a[5]))
	}), 6, false)
	v.setFunction("path_end", s.noArgs(s.dc.PathEnd), 0, false)

	// State
	v.setFunction("push_state", s.noArgs(s.dc.PushState), 0, false)
	v.setFunction("pop_state", s.noArgs(s.dc.PopState), 0, false)
	v.setFunction("translate", s.numbers("translate", 2, func(a []float64) { s.dc.Translate(a[0], a[1]) }), 2, false)
	v.setFunction("rotate", s.numbers("rotate", 1, func(a []float64) { s.dc.Rotate(a[0]) }), 1, false)
	v.setFunction("scale", s.numbers("scale", 1, func(a []float64) { s.dc.Scale(a[0]) }), 1, false)

	// Queries
	v.setFunction("frame_count", s.query(func() []rt.Value {
		return []rt.Value{rt.IntValue(int64(s.dc.FrameCount()))}
	}), 0, false)
	v.setFunction("width", s.query(func() []rt.Value {
		return []rt.Value{rt.FloatValue(s.dc.Width())}
	}), 0, false)
	v.setFunction("height", s.query(func() []rt.Value {
		return []rt.Value{rt.FloatValue(s.dc.Height())}
	}), 0, false)
	v.setFunction("mouse", s.query(func() []rt.Value {
		p := s.dc.Mouse()
		return []rt.Value{rt.FloatValue(p.X), rt.FloatValue(p.Y)}
	}), 0, false)
	v.setFunction("mouse_pressed", s.query(func() []rt.Value {
		return []rt.Value{rt.BoolValue(s.dc.MousePressed())}
	}), 0, false)
	v.setFunction("millis", s.query(func() []rt.Value {
		return []rt.Value{rt.IntValue(tin.Millis())}
	}), 0, false)

	// Helpers
	v.setFunction("random", s.numeric("random", 2, func(a []float64) float64 {
		return tin.Random(a[0], a[1])
	}), 2, false)
	v.setFunction("noise", s.numeric("noise", 3, func(a []float64) float64 {
		return tin.Noise(a[0], a[1], a[2])
	}), 3, false)
}

// noArgs wraps a call without arguments.
func (s *LuaScene) noArgs(fn func()) rt.GoFunctionFunc {
	return func(_ *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		fn()
		return c.Next(), nil
	}
}

// numbers wraps fn taking n numeric arguments.
func (s *LuaScene) numbers(name string, n int, fn func([]float64)) rt.GoFunctionFunc {
	return func(_ *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		a, err := floatArgs(name, allArgs(c), 0, n)
		if err != nil {
			return nil, err
		}
		fn(a)
		return c.Next(), nil
	}
}

// numeric wraps fn taking n numeric arguments and returning a number.
func (s *LuaScene) numeric(name string, n int, fn func([]float64) float64) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		a, err := floatArgs(name, allArgs(c), 0, n)
		if err != nil {
			return nil, err
		}
		return c.PushingNext1(t.Runtime, rt.FloatValue(fn(a))), nil
	}
}

func (s *LuaScene) query(fn func() []rt.Value) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		return c.PushingNext(t.Runtime, fn()...), nil
	}
}

// background(gray), background(gray, alpha), background(r, g, b[, a])
// or background("#rrggbb").
func (s *LuaScene) background(_ *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	col, err := colorArgs("background", allArgs(c))
	if err != nil {
		return nil, err
	}
	s.dc.BackgroundWithColor(col)
	return c.Next(), nil
}

// fill takes the same arguments as background.
func (s *LuaScene) fill(_ *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	col, err := colorArgs("fill", allArgs(c))
	if err != nil {
		return nil, err
	}
	s.dc.FillColorFromColor(col)
	return c.Next(), nil
}

// stroke takes the same arguments as background.
func (s *LuaScene) stroke(_ *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	col, err := colorArgs("stroke", allArgs(c))
	if err != nil {
		return nil, err
	}
	s.dc.StrokeColorFromColor(col)
	return c.Next(), nil
}

// text(msg, x, y[, size[, font]])
func (s *LuaScene) text(_ *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := allArgs(c)
	msg, err := stringArg("text", args, 0)
	if err != nil {
		return nil, err
	}
	pos, err := floatArgs("text", args, 1, 2)
	if err != nil {
		return nil, err
	}
	var font tin.Font
	if len(args) > 3 {
		if font.Size, err = floatArg("text", args, 3); err != nil {
			return nil, err
		}
	}
	if len(args) > 4 {
		if font.Name, err = stringArg("text", args, 4); err != nil {
			return nil, err
		}
	}
	s.dc.DrawText(msg, font, pos[0], pos[1])
	return c.Next(), nil
}

// image(path, x, y[, width, height]). Paths are relative to the scene
// file and loaded once.
func (s *LuaScene) image(_ *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := allArgs(c)
	path, err := stringArg("image", args, 0)
	if err != nil {
		return nil, err
	}
	img, err := s.loadImage(path)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	if len(args) >= 5 {
		a, err := floatArgs("image", args, 1, 4)
		if err != nil {
			return nil, err
		}
		s.dc.DrawImageWithSize(img, a[0], a[1], a[2], a[3])
		return c.Next(), nil
	}
	a, err := floatArgs("image", args, 1, 2)
	if err != nil {
		return nil, err
	}
	s.dc.DrawImage(img, a[0], a[1])
	return c.Next(), nil
}

func allArgs(c *rt.GoCont) []rt.Value {
	return append(c.Args(), c.Etc()...)
}

func floatArg(name string, args []rt.Value, i int) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s: missing argument %d", name, i+1)
	}
	if f, ok := args[i].TryFloat(); ok {
		return f, nil
	}
	if n, ok := args[i].TryInt(); ok {
		return float64(n), nil
	}
	return 0, fmt.Errorf("%s: argument %d is not a number", name, i+1)
}

// floatArgs returns the n numbers starting at args[from].
func floatArgs(name string, args []rt.Value, from, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		f, err := floatArg(name, args, from+i)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func stringArg(name string, args []rt.Value, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%s: missing argument %d", name, i+1)
	}
	if s, ok := args[i].TryString(); ok {
		return s, nil
	}
	return "", fmt.Errorf("%s: argument %d is not a string", name, i+1)
}

func colorArgs(name string, args []rt.Value) (tin.Color, error) {
	if len(args) == 1 {
		if s, ok := args[0].TryString(); ok {
			c, err := tin.ParseHex(s)
			if err != nil {
				return tin.Color{}, fmt.Errorf("%s: %w", name, err)
			}
			return c, nil
		}
	}

	a, err := floatArgs(name, args, 0, len(args))
	if err != nil {
		return tin.Color{}, err
	}
	switch len(a) {
	case 1:
		return tin.Gray(a[0]), nil
	case 2:
		return tin.GrayAlpha(a[0], a[1]), nil
	case 3:
		return tin.RGBA(a[0], a[1], a[2], 1), nil
	case 4:
		return tin.RGBA(a[0], a[1], a[2], a[3]), nil
	}
	return tin.Color{}, fmt.Errorf("%s: want 1 to 4 color components, got %d", name, len(a))
}
