package domain

// UIState describes what the next text message from the user means
type UIState string

const (
	StateIdle        UIState = "idle"
	StateConfirmSave UIState = "confirm_save"
	StateQuizAnswer  UIState = "quiz_answer"
)

// StateData holds temporary data for the user's current state
type StateData struct {
	State          UIState
	PendingEnglish string
	PendingChinese string
}
