package sprig

// DefaultMaxBatchSize is the number of sprites buffered before an automatic
// flush. It must be a power of two.
const DefaultMaxBatchSize = 4096

// Option configures a RenderContext during creation.
//
// Example:
//
//	r, err := sprig.NewRenderer(sprig.NewEbitenDevice(),
//		sprig.WithMaxBatchSize(2048),
//		sprig.WithDebug(true),
//	)
type Option func(*options)

type options struct {
	maxBatchSize int
	maxTextures  int // 0 selects the device-class default
	deviceClass  DeviceClass
	classSet     bool
	debug        bool
	culling      bool
}

func defaultOptions() options {
	return options{
		maxBatchSize: DefaultMaxBatchSize,
		culling:      true,
	}
}

// WithMaxBatchSize sets how many sprites are buffered before an automatic
// flush. n must be a power of two.
func WithMaxBatchSize(n int) Option {
	return func(o *options) {
		o.maxBatchSize = n
	}
}

// WithMaxTextures requests an upper bound on textures per draw call. The
// effective value is further capped by the device and the shader compiler.
func WithMaxTextures(n int) Option {
	return func(o *options) {
		o.maxTextures = n
	}
}

// WithDeviceClass overrides the detected device class, which selects the
// default texture count.
func WithDeviceClass(c DeviceClass) Option {
	return func(o *options) {
		o.deviceClass = c
		o.classSet = true
	}
}

// WithDebug enables invariant assertions (panics on violated batching
// invariants) and per-frame stats logging at debug level.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// WithCulling controls whether Renderer.Render skips items whose quad lies
// entirely outside the render target. Enabled by default.
func WithCulling(enabled bool) Option {
	return func(o *options) {
		o.culling = enabled
	}
}
