package battle

//go:generate go tool mockgen -source=input.go -destination=mocks/mock_input.go -package=mocks

// Keycode values follow the browser KeyboardEvent.keyCode table.
type Keycode int

const (
	KeyBackspace Keycode = 8
	KeyEnter     Keycode = 13
	KeySpace     Keycode = 32
	KeyLeft      Keycode = 37
	KeyUp        Keycode = 38
	KeyRight     Keycode = 39
	KeyDown      Keycode = 40
)

// InputController is the scene's own keyboard input layer. Events are queued
// and consumed by the next simulation update.
type InputController interface {
	KeyDown(code Keycode)
	KeyUp(code Keycode)
}
