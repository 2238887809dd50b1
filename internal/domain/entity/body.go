package entity

import "fmt"

// Body is the physical and combat state shared by players and enemies.
// Position is the top-left corner in canvas units.
type Body struct {
	ID     EntityID
	X, Y   float64
	VX, VY float64
	Width  float64
	Height float64

	Health    int
	MaxHealth int

	// Grounded is recomputed by the collision pass every tick
	Grounded bool
	Facing   Facing

	// Attacking is true exactly while AttackTimer > 0
	Attacking   bool
	AttackTimer int
	AttackBox   *Rect

	// HitStun blocks incoming hits while nonzero
	HitStun int
}

// NewBody creates a body at full health
func NewBody(id EntityID, x, y, w, h float64, maxHealth int) Body {
	return Body{
		ID:        id,
		X:         x,
		Y:         y,
		Width:     w,
		Height:    h,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Facing:    FacingRight,
	}
}

// Validate rejects bodies that cannot take part in a simulation
func (b *Body) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: body %d has size %.1fx%.1f", ErrInvalidEntity, b.ID, b.Width, b.Height)
	}
	if b.MaxHealth <= 0 {
		return fmt.Errorf("%w: body %d has max health %d", ErrInvalidEntity, b.ID, b.MaxHealth)
	}
	return nil
}

// Bounds returns the body's rectangle in world coordinates
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Bottom returns the y coordinate of the feet
func (b *Body) Bottom() float64 {
	return b.Y + b.Height
}

// CenterX returns the horizontal center
func (b *Body) CenterX() float64 {
	return b.X + b.Width/2
}

// IsDefeated returns true once health has reached zero
func (b *Body) IsDefeated() bool {
	return b.Health <= 0
}

// TakeDamage subtracts damage, clamping at zero.
// Returns true if this hit defeated the body.
func (b *Body) TakeDamage(damage int) bool {
	if b.Health <= 0 {
		return false
	}
	b.Health -= damage
	if b.Health < 0 {
		b.Health = 0
	}
	return b.Health == 0
}

// ClearAttack ends any active attack window
func (b *Body) ClearAttack() {
	b.Attacking = false
	b.AttackTimer = 0
	b.AttackBox = nil
}

// Face turns the body toward dir (-1 left, +1 right). Zero keeps the current facing.
func (b *Body) Face(dir float64) {
	switch {
	case dir < 0:
		b.Facing = FacingLeft
	case dir > 0:
		b.Facing = FacingRight
	}
}

// Player is the user-controlled fighter
type Player struct {
	Body
	Name string
}

// NewPlayer creates a new player with full health, facing right
func NewPlayer(id EntityID, name string, x, y, w, h float64, maxHealth int) *Player {
	return &Player{
		Body: NewBody(id, x, y, w, h, maxHealth),
		Name: name,
	}
}
