package entity

// Bloom strength bounds
const (
	BloomMin = 0.0
	BloomMax = 20.0
)

// SceneState is the mutable substrate written by the cinematic and read
// by the renderer. Exactly one tween chain writes it at a time.
type SceneState struct {
	Camera     Camera
	Home       HomePose
	Bloom      float64
	Background Color

	// Whiteout freezes star drift and flicker. Rendering continues.
	Whiteout bool
}

// NewSceneState creates a scene with the camera at home and a black background
func NewSceneState(home HomePose, cam Camera, bloom float64) *SceneState {
	cam.Position = home.Position
	cam.Look = home.Look
	cam.UpdateProjection()
	return &SceneState{
		Camera:     cam,
		Home:       home,
		Bloom:      bloom,
		Background: Black,
	}
}

// SetBloom sets the bloom strength clamped to [BloomMin, BloomMax]
func (s *SceneState) SetBloom(v float64) {
	s.Bloom = Clamp(v, BloomMin, BloomMax)
}

// EnterWhiteout switches to a white, frozen frame
func (s *SceneState) EnterWhiteout() {
	s.Whiteout = true
	s.Background = White
}

// ClearWhiteout resumes star motion. The background is left as is.
func (s *SceneState) ClearWhiteout() {
	s.Whiteout = false
}

// AtHome reports whether the camera is within eps of the home pose
func (s *SceneState) AtHome(eps float64) bool {
	return s.Camera.Position.Sub(s.Home.Position).Norm() <= eps &&
		s.Camera.Look.Sub(s.Home.Look).Norm() <= eps
}
