package runner

// Hit is the outcome of testing the player against a projectile.
type Hit int

const (
	HitNone   Hit = iota
	HitPickup     // Benign projectile collected
	HitFatal      // Harmful projectile, ends the session
)

// HitsObstacle reports whether the player overlaps the obstacle.
// Any overlap is fatal.
func HitsObstacle(p Player, o Obstacle) bool {
	return p.Box().Intersects(o.Box())
}

// HitsProjectile tests the player against a projectile's enclosing box.
func HitsProjectile(p Player, b Projectile) Hit {
	if !p.Box().Intersects(b.Box()) {
		return HitNone
	}
	if b.Harmful {
		return HitFatal
	}
	return HitPickup
}
