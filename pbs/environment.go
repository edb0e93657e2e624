package pbs

// Viewport is a browsing context's screen dimensions and location.
type Viewport struct {
	ScreenWidth  uint64
	ScreenHeight uint64
	Location     string
}

// Environment exposes the browsing context the auction runs in. It replaces
// ambient global reads: the orchestrator injects one per integration, and
// cross-origin failures surface as ordinary errors instead of panics.
type Environment interface {
	// TopViewport returns the top-level browsing context. It returns an
	// error when frame nesting makes the top context unreachable.
	TopViewport() (Viewport, error)

	// Location returns the current (possibly nested) context's location.
	// It is always reachable.
	Location() string

	// Language returns the primary language tag, e.g. "en-US".
	Language() string
}

// StaticEnvironment is an Environment with fixed values, for integrations
// that resolve the page state once up front (and for tests).
type StaticEnvironment struct {
	Top         Viewport
	TopErr      error
	OwnLocation string
	Lang        string
}

func (e StaticEnvironment) TopViewport() (Viewport, error) {
	if e.TopErr != nil {
		return Viewport{}, e.TopErr
	}
	return e.Top, nil
}

func (e StaticEnvironment) Location() string {
	return e.OwnLocation
}

func (e StaticEnvironment) Language() string {
	return e.Lang
}
