package render

import "github.com/gogpu/blinc/draw"

// replayer adapts a PaintContext to draw.CommandVisitor so recorded
// canvas layers can feed the primitive batch. A separate type is
// needed because the visitor's method names collide with the
// DrawContext ones on PaintContext itself.
type replayer struct {
	p *PaintContext
}

// ReplayRecording lowers a finished recording into the paint
// context's frame content.
func ReplayRecording(p *PaintContext, rec *draw.Recording) {
	rec.Replay(replayer{p})
}

func (r replayer) PushTransform(c draw.PushTransformCmd) { r.p.PushTransform(c.Transform) }
func (r replayer) PopTransform(draw.PopTransformCmd)     { r.p.PopTransform() }
func (r replayer) PushClip(c draw.PushClipCmd)           { r.p.PushClip(c.Shape) }
func (r replayer) PopClip(draw.PopClipCmd)               { r.p.PopClip() }
func (r replayer) PushOpacity(c draw.PushOpacityCmd)     { r.p.PushOpacity(c.Opacity) }
func (r replayer) PopOpacity(draw.PopOpacityCmd)         { r.p.PopOpacity() }
func (r replayer) PushBlendMode(c draw.PushBlendModeCmd) { r.p.PushBlendMode(c.Mode) }
func (r replayer) PopBlendMode(draw.PopBlendModeCmd)     { r.p.PopBlendMode() }

func (r replayer) FillPath(c draw.FillPathCmd) { r.p.FillPath(c.Path, c.Brush) }
func (r replayer) StrokePath(c draw.StrokePathCmd) {
	r.p.StrokePath(c.Path, c.Stroke, c.Brush)
}
func (r replayer) FillRect(c draw.FillRectCmd) { r.p.FillRect(c.Rect, c.Radius, c.Brush) }
func (r replayer) StrokeRect(c draw.StrokeRectCmd) {
	r.p.StrokeRect(c.Rect, c.Radius, c.Stroke, c.Brush)
}
func (r replayer) FillCircle(c draw.FillCircleCmd) { r.p.FillCircle(c.Center, c.Radius, c.Brush) }
func (r replayer) StrokeCircle(c draw.StrokeCircleCmd) {
	r.p.StrokeCircle(c.Center, c.Radius, c.Stroke, c.Brush)
}
func (r replayer) DrawText(c draw.DrawTextCmd) { r.p.DrawText(c.Text, c.Origin, c.Style) }
func (r replayer) DrawImage(c draw.DrawImageCmd) { r.p.DrawImage(c.Image, c.Rect, c.Options) }
func (r replayer) DrawShadow(c draw.DrawShadowCmd) {
	r.p.DrawShadow(c.Rect, c.Radius, c.Shadow)
}
func (r replayer) DrawInnerShadow(c draw.DrawInnerShadowCmd) {
	r.p.DrawInnerShadow(c.Rect, c.Radius, c.Shadow)
}
func (r replayer) DrawCircleShadow(c draw.DrawCircleShadowCmd) {
	r.p.DrawCircleShadow(c.Center, c.Radius, c.Shadow)
}
func (r replayer) DrawCircleInnerShadow(c draw.DrawCircleInnerShadowCmd) {
	r.p.DrawCircleInnerShadow(c.Center, c.Radius, c.Shadow)
}

func (r replayer) SetCamera(c draw.SetCameraCmd) { r.p.SetCamera(c.Camera) }
func (r replayer) DrawMesh(c draw.DrawMeshCmd) {
	r.p.DrawMesh(c.Mesh, c.Material, c.Transform)
}
func (r replayer) DrawMeshInstanced(c draw.DrawMeshInstancedCmd) {
	r.p.DrawMeshInstanced(c.Mesh, c.Instances)
}
func (r replayer) AddLight(c draw.AddLightCmd) { r.p.AddLight(c.Light) }
func (r replayer) SetEnvironment(c draw.SetEnvironmentCmd) {
	r.p.SetEnvironment(c.Environment)
}

func (r replayer) PushLayer(c draw.PushLayerCmd) { r.p.PushLayer(c.Config) }
func (r replayer) PopLayer(draw.PopLayerCmd)     { r.p.PopLayer() }
func (r replayer) SampleLayer(c draw.SampleLayerCmd) {
	r.p.SampleLayer(c.ID, c.SourceRect, c.DestRect)
}
