package sprig

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is anything the Renderer can turn into a sprite draw request.
// DrawRequest fills req and reports false when there is nothing to draw.
type Drawable interface {
	DrawRequest(req *SpriteDrawRequest) bool
}

// Renderer draws Drawables through one RenderContext with a batching
// SpriteRenderer. It is the usual entry point:
//
//	r, err := sprig.NewRenderer(sprig.NewEbitenDevice())
//	...
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.renderer.Draw(screen, g.items)
//	}
type Renderer struct {
	ctx     *RenderContext
	sprites *SpriteRenderer
	debug   bool
	cull    bool

	screen *Screen // reused by Draw
	req    SpriteDrawRequest
	culled int
	stats  FrameStats
}

// NewRenderer creates a render context on dev and a sprite renderer on it.
func NewRenderer(dev Device, opts ...Option) (*Renderer, error) {
	ctx, err := NewRenderContext(dev, opts...)
	if err != nil {
		return nil, err
	}
	sprites, err := NewSpriteRenderer(ctx)
	if err != nil {
		return nil, fmt.Errorf("sprig: create sprite renderer: %w", err)
	}
	return &Renderer{
		ctx:     ctx,
		sprites: sprites,
		debug:   ctx.opts.debug,
		cull:    ctx.opts.culling,
	}, nil
}

// Context returns the render context.
func (r *Renderer) Context() *RenderContext { return r.ctx }

// SpriteRenderer returns the batching sprite renderer.
func (r *Renderer) SpriteRenderer() *SpriteRenderer { return r.sprites }

// Render draws items into target in slice order: later items cover earlier
// ones. Everything is flushed before Render returns.
//
// With culling enabled, items whose quad lies entirely outside the target
// are skipped. A target that reports a zero size disables culling for the
// frame.
func (r *Renderer) Render(target RenderTarget, items []Drawable) {
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	var view Rect
	if target != nil {
		w, h := target.Size()
		view = Rect{Width: float64(w), Height: float64(h)}
	}
	cull := r.cull && view.Width > 0 && view.Height > 0
	r.culled = 0

	state := r.ctx.state
	state.ResetCounters()
	r.sprites.PrepareFrame()
	if !r.ctx.Lost() {
		state.invalidateTarget()
		state.SetRenderTarget(target)
	}
	r.sprites.Start()

	for _, item := range items {
		if item == nil {
			continue
		}
		r.req = SpriteDrawRequest{}
		if !item.DrawRequest(&r.req) {
			continue
		}
		if cull && shouldCull(itemBounds(item, &r.req), view) {
			r.culled++
			continue
		}
		r.sprites.Render(&r.req)
	}
	r.req = SpriteDrawRequest{}

	var submit time.Duration
	if r.debug {
		submit = time.Since(t0)
		t0 = time.Now()
	}

	r.sprites.Stop()
	r.afterRender(submit, t0)
}

// Draw renders items onto screen, usually the image handed to
// ebiten.Game.Draw. It is Render with a Screen the renderer keeps across
// frames.
func (r *Renderer) Draw(screen *ebiten.Image, items []Drawable) {
	if r.screen == nil {
		r.screen = NewScreen(nil)
	}
	r.screen.Set(screen)
	r.Render(r.screen, items)
}

// afterRender collects the frame's stats.
func (r *Renderer) afterRender(submit time.Duration, flushStart time.Time) {
	stats := r.sprites.takeStats()
	stats.Culled = r.culled
	stats.ShaderSwitches = r.ctx.state.shaderSwitches
	stats.BlendSwitches = r.ctx.state.blendSwitches
	if r.debug {
		stats.SubmitTime = submit
		stats.FlushTime = time.Since(flushStart)
		debugLog(stats)
	}
	r.stats = stats
}

// Stats returns the metrics of the most recent Render.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// HandleContextLost suspends GPU work. Pending sprites are discarded and no
// GPU call is made until HandleContextRestored.
func (r *Renderer) HandleContextLost() {
	r.ctx.contextLost()
	r.sprites.ContextLost()
	Logger().Info("sprig: context lost", "id", r.ctx.id)
}

// HandleContextRestored recreates every GPU object. Textures re-upload
// lazily on their next bind.
func (r *Renderer) HandleContextRestored() error {
	r.ctx.contextRestored()
	if err := r.sprites.ContextRestored(); err != nil {
		return fmt.Errorf("sprig: restore context: %w", err)
	}
	Logger().Info("sprig: context restored", "id", r.ctx.id, "generation", r.ctx.generation)
	return nil
}

// Dispose releases the renderer's GPU objects. Textures are owned by their
// BaseTextures and are not released here.
func (r *Renderer) Dispose() {
	r.sprites.Dispose()
}
