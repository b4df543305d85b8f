package system

// Intent represents an action requested by the user
type Intent interface {
	isIntent()
}

// GoToStarIntent starts (or restarts) the fly-to-star cinematic
type GoToStarIntent struct{}

func (GoToStarIntent) isIntent() {}

// ReturnIntent flies the camera back to the home pose
type ReturnIntent struct{}

func (ReturnIntent) isIntent() {}

// TuneIntent overrides live scene parameters. Nil fields are left alone.
type TuneIntent struct {
	Bloom *float64
	FOV   *float64 // degrees
}

func (TuneIntent) isIntent() {}

// Empty reports whether the intent changes nothing
func (t TuneIntent) Empty() bool {
	return t.Bloom == nil && t.FOV == nil
}
