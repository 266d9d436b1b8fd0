package sprig

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDevice is returned when a render context is created without a device.
	ErrNilDevice = errors.New("sprig: nil device")

	// ErrNoTextureUnits is returned when capability probing finds no usable
	// texture unit.
	ErrNoTextureUnits = errors.New("sprig: device reports no usable texture units")

	// ErrBatchSizeNotPow2 is returned when the configured batch size is not a
	// power of two.
	ErrBatchSizeNotPow2 = errors.New("sprig: max batch size must be a power of two")
)

// contextIDCounter is a plain counter; sprig is single-threaded.
var contextIDCounter uint32

// RenderContext owns a Device and the state shared by every renderer drawing
// through it: bound-state tracking, the texture tick and the context
// generation that invalidates GPU handles after a context loss.
type RenderContext struct {
	id          uint32
	device      Device
	state       *RenderState
	opts        options
	maxTextures int

	// generation increments on every context restore. Texture handles
	// uploaded in an older generation are re-uploaded before use.
	generation uint32

	// tick is compared against TextureHandle.enabledTick to detect whether a
	// texture already occupies a unit in the open batch group.
	tick uint32

	lost bool
}

// NewRenderContext probes dev and returns a context ready for renderers.
// Failure here is fatal to the caller: there is nothing to draw with.
func NewRenderContext(dev Device, opts ...Option) (*RenderContext, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !isPow2(o.maxBatchSize) {
		return nil, fmt.Errorf("%w: got %d", ErrBatchSizeNotPow2, o.maxBatchSize)
	}
	class := o.deviceClass
	if !o.classSet {
		class = DetectDeviceClass()
	}
	maxTextures, err := probeMaxTextures(dev, class, o.maxTextures)
	if err != nil {
		return nil, err
	}

	contextIDCounter++
	c := &RenderContext{
		id:          contextIDCounter,
		device:      dev,
		opts:        o,
		maxTextures: maxTextures,
	}
	c.state = newRenderState(dev)

	Logger().Info("sprig: render context created",
		"id", c.id,
		"deviceClass", class.String(),
		"maxTextures", maxTextures,
		"maxBatchSize", o.maxBatchSize)
	return c, nil
}

// ID returns the context's process-unique identifier.
func (c *RenderContext) ID() uint32 { return c.id }

// Device returns the underlying device.
func (c *RenderContext) Device() Device { return c.device }

// State returns the bound-state tracker.
func (c *RenderContext) State() *RenderState { return c.state }

// MaxTextures returns the probed number of textures per draw call.
func (c *RenderContext) MaxTextures() int { return c.maxTextures }

// MaxBatchSize returns the configured sprite count per flush.
func (c *RenderContext) MaxBatchSize() int { return c.opts.maxBatchSize }

// Generation returns the number of context restorations seen so far.
func (c *RenderContext) Generation() uint32 { return c.generation }

// Lost reports whether GPU calls must currently be suppressed.
func (c *RenderContext) Lost() bool {
	return c.lost || c.device.IsContextLost()
}

func (c *RenderContext) nextTick() uint32 {
	c.tick++
	return c.tick
}

func (c *RenderContext) contextLost() {
	c.lost = true
}

func (c *RenderContext) contextRestored() {
	c.lost = false
	c.generation++
	c.state.Reset()
}
