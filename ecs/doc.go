// Package ecs provides Donburi adapters for sprig.
//
// Attach a [SpriteComponent] to an entity to make it drawable, and an
// optional [TransformComponent] to drive the sprite's placement from ECS
// systems. [Drawables] collects every drawable entity in entity id order,
// ready for Renderer.Render:
//
//	e := world.Create(ecs.SpriteComponent, ecs.TransformComponent)
//	entry := world.Entry(e)
//	ecs.SpriteComponent.SetValue(entry, sprig.NewSprite("hero", tex))
//	ecs.TransformComponent.SetValue(entry, ecs.Transform{X: 10, Y: 20, ScaleX: 1, ScaleY: 1})
//	...
//	renderer.Render(screen, ecs.Drawables(world, items[:0]))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
