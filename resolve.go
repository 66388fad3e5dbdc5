package tin

// ProcessDrawCalls drains the queue in enqueue order, applying each call to
// the resolved state and dispatching geometry to the renderer.
//
// The brush for each primitive is computed from the state at the moment
// that primitive is reached, not when it was enqueued. The write lock is
// held for the whole drain so calls enqueued concurrently wait for the
// next frame.
func (c *Context) ProcessDrawCalls() {
	c.mu.Lock()
	defer c.mu.Unlock()

	queue := c.queue
	c.queue = nil
	for _, call := range queue {
		c.resolveLocked(call)
	}
}

func (c *Context) brushLocked() Brush {
	b := ResolveBrush(c.shouldFill, c.shouldStroke, c.fillColor, c.strokeColor)
	if _, ok := b.StrokeColor(); ok {
		b.Width = c.state.ApplyLength(c.lineWidth)
	}
	return b
}

func (c *Context) resolveLocked(call DrawCall) {
	r := c.renderer
	s := c.state

	switch cmd := call.(type) {
	// Color and style
	case BackgroundCall:
		c.backgroundColor = cmd.Color
		r.Background(cmd.Color)
	case FillCall:
		c.fillColor = cmd.Color
		c.shouldFill = true
	case StrokeCall:
		c.strokeColor = cmd.Color
		c.shouldStroke = true
	case SetAlphaCall:
		c.fillColor = c.fillColor.WithAlpha(cmd.Alpha)
		c.strokeColor = c.strokeColor.WithAlpha(cmd.Alpha)
	case LineWidthCall:
		c.lineWidth = cmd.Width
	case FillEnableCall:
		c.shouldFill = true
	case FillDisableCall:
		c.shouldFill = false
	case StrokeEnableCall:
		c.shouldStroke = true
	case StrokeDisableCall:
		c.shouldStroke = false

	// Transform
	case PushStateCall:
		saved := c.state
		c.pushedState = &saved
		r.PushState()
	case PopStateCall:
		if c.pushedState == nil {
			Logger().Warn("tin: pop state without push", "frame", c.frameCount)
			return
		}
		c.state = *c.pushedState
		c.pushedState = nil
		r.PopState()
	case TranslateCall:
		c.state.Translation = c.state.Translation.Add(Vector2{X: cmd.DX, Y: cmd.DY})
	case RotateCall:
		c.state.Rotation += cmd.Angle
	case ScaleCall:
		// Additive, like translate and rotate.
		c.state.Scale += cmd.Amount

	// Geometry
	case LineCall:
		quad := LineQuad(cmd.From, cmd.To, c.lineWidth)
		r.Line(s.ApplyAll(quad), c.brushLocked(), s)
	case RectCall:
		r.Rect(s.ApplyAll(cmd.Rect.Corners()), c.brushLocked(), s)
	case TriangleCall:
		r.Triangle(s.ApplyAll(cmd.Triangle.Points()), c.brushLocked(), s)
	case ArcCall:
		a := cmd.Arc
		a.Center = s.Apply(a.Center)
		a.Radius = s.ApplyLength(a.Radius)
		a.StartAngle += s.Rotation
		a.EndAngle += s.Rotation
		r.Arc(a, c.brushLocked(), s)
	case EllipseCall:
		r.Ellipse(transformRect(cmd.Bounds, s), c.brushLocked(), s)
	case RoundedRectCall:
		rr := cmd.Rect
		rr.Rect = transformRect(rr.Rect, s)
		rr.RadiusX = s.ApplyLength(rr.RadiusX)
		rr.RadiusY = s.ApplyLength(rr.RadiusY)
		r.RoundedRect(rr, c.brushLocked(), s)
	case PathBeginCall:
		r.PathBegin()
	case PathVertexCall:
		r.PathVertex(s.Apply(cmd.Point), c.brushLocked(), s)
	case PathAddCurveCall:
		r.PathAddCurve(s.Apply(cmd.To), s.Apply(cmd.Control1), s.Apply(cmd.Control2), c.brushLocked(), s)
	case PathEndCall:
		r.PathEnd(c.brushLocked(), s)
	case ImageCall:
		r.Image(cmd.Image, imageDest(cmd, s), cmd.Resize, c.brushLocked(), s)
	case TextCall:
		r.Text(cmd.Message, cmd.Font, s.Apply(Point{X: cmd.X, Y: cmd.Y}), c.brushLocked(), s)

	default:
		Logger().Warn("tin: unknown draw call", "type", call.Type().String())
	}
}

// transformRect maps r's center through s and scales its size. Rotation is
// left to the renderer, which receives s alongside.
func transformRect(r Rect, s DrawState) Rect {
	if s.IsIdentity() {
		return r
	}
	center := s.Apply(r.Center())
	return RectFromCenter(center.X, center.Y, s.ApplyLength(r.Width), s.ApplyLength(r.Height))
}

func imageDest(call ImageCall, s DrawState) Rect {
	w, h := call.Width, call.Height
	if call.Image != nil {
		if w == 0 {
			w = float64(call.Image.Width())
		}
		if h == 0 {
			h = float64(call.Image.Height())
		}
	}
	origin := s.Apply(Point{X: call.X, Y: call.Y})
	return Rect{X: origin.X, Y: origin.Y, Width: s.ApplyLength(w), Height: s.ApplyLength(h)}
}
