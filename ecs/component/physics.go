package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/phox/common"
)

// Velocity is an entity's linear velocity in pixels per second. Gameplay
// rules write it; the physics system integrates it and writes it back.
type Velocity struct {
	common.Vec2
}

var VelocityComponent = NewComponent[Velocity]()

// PhysicsBody stores Chipmunk2D runtime handles and collider configuration.
type PhysicsBody struct {
	Body            *cp.Body
	Shape           *cp.Shape
	Width           float64
	Height          float64
	Mass            float64
	Friction        float64
	Elasticity      float64
	Static          bool
	LockRotation    bool
	AlignBottomLeft bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
