package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
	"github.com/milk9111/phox/prefabs"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

const (
	defaultGravity    = 400.0
	defaultIterations = 10
	boundsFriction    = 0.8

	// restingVelocity is the magnitude below which a solved velocity is
	// treated as exactly zero. Resting contacts leave denormal residue.
	restingVelocity = 1e-9
)

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk space. Each
// tick it pushes gameplay velocities into the bodies, steps the space by the
// world's delta, and writes positions and velocities back. The space is y up.
type PhysicsSystem struct {
	space       *cp.Space
	boundsWalls bool

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem(spec *prefabs.WorldSpec) *PhysicsSystem {
	gravity := defaultGravity
	iterations := defaultIterations
	boundsWalls := true
	if spec != nil {
		if spec.Gravity > 0 {
			gravity = spec.Gravity
		}
		if spec.Iterations > 0 {
			iterations = spec.Iterations
		}
		boundsWalls = spec.BoundsWalls
	}

	space := cp.NewSpace()
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	return &PhysicsSystem{
		space:       space,
		boundsWalls: boundsWalls,
		entities:    make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncEntities(w)
	if ps.boundsWalls {
		ps.syncWorldBounds(w)
	}
	ps.pushVelocities(w)

	if dt := w.Delta(); dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			return
		}

		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())
		info := ps.createBodyInfo(*transform, *bodyComp, isPlayer)
		if info == nil || len(info.shapes) == 0 {
			return
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, isPlayer bool) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 16
		height = 16
	}

	left := transform.X - width/2
	bottom := transform.Y - height/2
	if bodyComp.AlignBottomLeft {
		left = transform.X
		bottom = transform.Y
	}

	info := &bodyInfo{static: bodyComp.Static}

	if bodyComp.Static {
		bb := cp.BB{L: left, B: bottom, R: left + width, T: bottom + height}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, width, height)
	if bodyComp.LockRotation {
		moment = cp.INFINITY
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: left + width/2, Y: bottom + height/2})
	body.SetAngle(transform.Rotation)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	if isPlayer {
		shape.SetCollisionType(collisionTypePlayer)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shapes = []*cp.Shape{shape}
	return info
}

// syncWorldBounds walls the level in with static segments once per bounds
// entity.
func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	l, b := bounds.OffsetX, bounds.OffsetY
	r, t := l+bounds.Width, b+bounds.Height
	segments := [][2]cp.Vector{
		{{X: l, Y: b}, {X: r, Y: b}},
		{{X: l, Y: t}, {X: r, Y: t}},
		{{X: l, Y: b}, {X: l, Y: t}},
		{{X: r, Y: b}, {X: r, Y: t}},
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg[0], seg[1], 1)
		shape.SetFriction(boundsFriction)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) pushVelocities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, bodyComp *component.PhysicsBody, vel *component.Velocity) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		bodyComp.Body.SetVelocityVector(cp.Vector{X: vel.X, Y: vel.Y})
		if bodyComp.LockRotation {
			bodyComp.Body.SetAngle(0)
			bodyComp.Body.SetAngularVelocity(0)
		}
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		if bodyComp.AlignBottomLeft {
			transform.X = pos.X - bodyComp.Width/2
			transform.Y = pos.Y - bodyComp.Height/2
		} else {
			transform.X = pos.X
			transform.Y = pos.Y
		}
		transform.Rotation = bodyComp.Body.Angle()

		v := cp.Vector{X: snapZero(bodyComp.Body.Velocity().X), Y: snapZero(bodyComp.Body.Velocity().Y)}
		bodyComp.Body.SetVelocityVector(v)
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel.X = v.X
			vel.Y = v.Y
		}
	})
}

// cleanupEntities drops bodies whose entity died or lost its PhysicsBody.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		alive := ecs.IsAlive(w, e)
		if alive && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}
		ps.removeBody(info)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) removeBody(info *bodyInfo) {
	if info == nil {
		return
	}
	for _, shape := range info.shapes {
		if shape != nil {
			ps.space.RemoveShape(shape)
		}
	}
	if !info.static && info.body != nil {
		ps.space.RemoveBody(info.body)
	}
}

func snapZero(v float64) float64 {
	if math.Abs(v) < restingVelocity {
		return 0
	}
	return v
}
