package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collider is anything with an axis-aligned bounding box.
type Collider interface {
	Bounds() core.Rect
}

// CheckCollision reports whether avatar overlaps any member of set.
// When consume is true every overlapping member is removed from the set;
// the survivors keep their order. The set is left untouched otherwise.
func CheckCollision[T Collider](avatar core.Rect, set *[]T, consume bool) bool {
	hit := false
	if !consume {
		for _, item := range *set {
			if avatar.Intersects(item.Bounds()) {
				return true
			}
		}
		return false
	}

	kept := (*set)[:0]
	for _, item := range *set {
		if avatar.Intersects(item.Bounds()) {
			hit = true
			continue
		}
		kept = append(kept, item)
	}
	// Zero the tail so removed members are not retained.
	var zero T
	for i := len(kept); i < len(*set); i++ {
		(*set)[i] = zero
	}
	*set = kept
	return hit
}

// HitsGround reports whether the avatar's bottom edge has reached the floor.
func HitsGround(avatar core.Rect, floorY int) bool {
	return avatar.Bottom() >= floorY
}
