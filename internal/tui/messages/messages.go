package messages

// ApplyResultMsg reports how an apply attempt for Name finished.
// Err is nil on success.
type ApplyResultMsg struct {
	Name string
	Err  error
}
