package delilah

// Engine is the public entry point a host embeds (§6): it owns the
// current scene, the camera/projection/background state, and the last
// load error. All of its methods are soft-fail except where noted —
// bad input from LoadScene never panics, it reports failure and leaves
// any previously loaded scene in place.
type Engine struct {
	*CameraState
	scene     *SceneStore
	lastError string
}

// NewEngine returns an Engine with default camera state and no scene
// loaded. Render is a no-op (beyond clearing to the background color)
// until a scene is loaded.
func NewEngine() *Engine {
	return &Engine{CameraState: NewCameraState()}
}

// LoadScene parses data as a scene file (§6 JSON grammar) and, on
// success, installs it as the current scene. On failure the previous
// scene (if any) is left untouched and the failure reason is available
// from LastError.
func (e *Engine) LoadScene(data []byte) bool {
	store, err := ParseScene(data)
	if err != nil {
		e.lastError = err.Error()
		return false
	}
	e.scene = store
	e.lastError = ""
	return true
}

// LoadDefaultScene installs the built-in reference scene (§6), leaving
// camera/projection/background untouched.
func (e *Engine) LoadDefaultScene() {
	e.scene = defaultScene()
	e.lastError = ""
}

// LastError returns the reason the most recent LoadScene call failed,
// or "" if it succeeded, none has been attempted, or LoadDefaultScene
// has run since.
func (e *Engine) LastError() string {
	return e.lastError
}

// Render draws the current scene against surface at the given pixel
// dimensions (§4.3). With no scene loaded, it only clears surface to
// the background color. width and height must both be at least 2; a
// smaller target is a programmer error.
func (e *Engine) Render(surface DrawSurface, width, height int) {
	render(surface, e.scene, e.CameraState, width, height)
}
