package component

import "github.com/milk9111/phox/anim"

// Animation pairs an entity's playback state with the clip table it picks
// from.
type Animation struct {
	Animator anim.Animator
	Library  *anim.Library
}

var AnimationComponent = NewComponent[Animation]()
