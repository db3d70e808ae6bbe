package apps

// ArgumentError is a command-line input the user has to correct: a flag off
// its slider grid, or a combination a solver rejects.
type ArgumentError struct {
	msg string
}

func NewArgumentError(msg string) *ArgumentError {
	return &ArgumentError{msg}
}

func (err *ArgumentError) Error() string {
	return err.msg
}
