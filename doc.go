// Package sprig is a batching 2D sprite renderer for [Ebitengine].
//
// Sprig turns a list of sprites into as few draw calls as possible. Sprites
// that share a blend mode are drawn together even when they use different
// textures: up to [RenderContext.MaxTextures] textures are bound to separate
// texture units and each vertex carries the unit it samples from.
//
// # Quick start
//
// Create one [Renderer] per device and hand it the screen each frame:
//
//	type Game struct {
//		renderer *sprig.Renderer
//		items    []sprig.Drawable
//	}
//
//	func (g *Game) Draw(s *ebiten.Image) {
//		g.renderer.Draw(s, g.items)
//	}
//
//	r, err := sprig.NewRenderer(sprig.NewEbitenDevice())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Items are drawn in slice order; later items cover earlier ones. Items
// entirely outside the target are culled unless [WithCulling] turns it off.
// [Renderer.Render] accepts any [RenderTarget], such as a [RenderTexture].
//
// # Textures
//
// A [BaseTexture] owns pixels. It may start pending ([NewPendingBaseTexture])
// while an asset loads; sprites using it are skipped until [BaseTexture.SetImage]
// supplies the pixels. A [Texture] is a frame within a BaseTexture, optionally
// trimmed or rotated as produced by TexturePacker. [LoadAtlas] builds named
// frames from TexturePacker JSON and Ebitengine page images; a nil page stays
// pending until [Atlas.SetPage]. [LoadBaseTexture] decodes an image file.
//
// # Sprites
//
// [Sprite] combines a [Transform] with a texture, tint, alpha, blend mode and
// an optional custom [Shader]. Corner positions are cached and recomputed
// only when the transform, the anchor or the texture changes.
//
//	hero := sprig.NewSprite("hero", atlas.Texture("hero_idle"))
//	hero.SetPosition(100, 50)
//	hero.SetAnchor(0.5, 1)
//	hero.BlendMode = sprig.BlendAdd
//
// Anything implementing [Drawable] can be rendered; the ecs subpackage turns
// a [Donburi] world into drawables.
//
// # Batching
//
// [SpriteRenderer] queues draw requests and flushes them when the batch is
// full or the frame ends. A flush partitions the queue into [BatchGroup]s.
// A group closes when the blend mode changes, when a sprite carries a custom
// shader, or when a new texture arrives and every unit is taken. Each group
// is one draw call.
//
// The number of texture units is probed when the [RenderContext] is created:
// the device limit is capped by the device class default and by how many
// branches the shader compiler accepts. Options such as [WithMaxTextures] and
// [WithMaxBatchSize] tune the result.
//
// # Context loss
//
// [Renderer.HandleContextLost] suspends all GPU calls and discards pending
// sprites. [Renderer.HandleContextRestored] recreates shaders and buffers;
// textures upload again on their next use.
//
// # Animation
//
// Sprite properties can be animated with [TweenGroup], built on [gween].
//
// # Logging
//
// Sprig is silent by default. Pass a [log/slog] logger to [SetLogger] to see
// capability probing, context events and, with [WithDebug], per-frame
// [FrameStats].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sprig
