package player

// DefaultJumpLimit allows a ground jump plus two air jumps.
const DefaultJumpLimit = 2

// JumpCounter gates jump impulses. Count never exceeds Limit as long as
// callers check CanJump before Increase.
type JumpCounter struct {
	count int
	limit int
}

func NewJumpCounter(limit int) JumpCounter {
	if limit < 0 {
		limit = 0
	}
	return JumpCounter{limit: limit}
}

func (j JumpCounter) CanJump() bool {
	return j.count < j.limit
}

// Increase records an accepted jump. It does not check the limit.
func (j *JumpCounter) Increase() {
	j.count++
}

func (j *JumpCounter) Clear() {
	j.count = 0
}

func (j JumpCounter) Count() int {
	return j.count
}

func (j JumpCounter) Limit() int {
	return j.limit
}
