package ecs

import (
	"sort"

	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Transform is the ECS-side placement of a sprite. Systems write it; it is
// copied onto the sprite when the world is collected for drawing.
type Transform struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// SpriteComponent holds the sprite an entity draws.
var SpriteComponent = donburi.NewComponentType[*sprig.Sprite]()

// TransformComponent places the entity's sprite.
var TransformComponent = donburi.NewComponentType[Transform]()

var drawableQuery = donburi.NewQuery(filter.Contains(SpriteComponent))

type drawableEntry struct {
	id     uint64
	sprite *sprig.Sprite
}

// collector is reused across frames; ecs is single-threaded like sprig.
var collector []drawableEntry

// Drawables appends every entity sprite to dst in ascending entity id order
// and returns the extended slice. Donburi reuses the ids of removed entities,
// so this equals creation order only while no entity has been removed.
// Entities that also carry a TransformComponent have it applied to their
// sprite first.
func Drawables(world donburi.World, dst []sprig.Drawable) []sprig.Drawable {
	collector = collector[:0]
	drawableQuery.Each(world, func(entry *donburi.Entry) {
		s := SpriteComponent.GetValue(entry)
		if s == nil {
			return
		}
		if entry.HasComponent(TransformComponent) {
			applyTransform(s, TransformComponent.Get(entry))
		}
		collector = append(collector, drawableEntry{id: uint64(entry.Entity().Id()), sprite: s})
	})
	// Query order follows archetypes; draw order follows entity id.
	sort.SliceStable(collector, func(i, j int) bool {
		return collector[i].id < collector[j].id
	})
	for i := range collector {
		dst = append(dst, collector[i].sprite)
		collector[i].sprite = nil
	}
	return dst
}

func applyTransform(s *sprig.Sprite, t *Transform) {
	if s.X == t.X && s.Y == t.Y && s.ScaleX == t.ScaleX && s.ScaleY == t.ScaleY && s.Rotation == t.Rotation {
		return
	}
	s.X, s.Y = t.X, t.Y
	s.ScaleX, s.ScaleY = t.ScaleX, t.ScaleY
	s.Rotation = t.Rotation
	s.MarkDirty()
}
