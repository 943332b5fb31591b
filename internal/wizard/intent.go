package wizard

// Intent is an abstract navigation action, decoupled from how it was
// produced. The terminal adapter maps key presses to intents; tests feed
// intents directly. Input sources must emit one intent per logical press;
// repeat and release signals map to IntentNoop.
type Intent int

const (
	IntentNoop Intent = iota
	IntentQuit
	IntentConfirm
	IntentBack
	IntentUp
	IntentDown
)

// Apply dispatches one intent onto exactly one session operation.
func (s *Session) Apply(intent Intent) {
	switch intent {
	case IntentQuit:
		s.Quit()
	case IntentConfirm:
		s.Advance()
	case IntentBack:
		s.GoBack()
	case IntentUp:
		s.MoveUp()
	case IntentDown:
		s.MoveDown()
	}
}
