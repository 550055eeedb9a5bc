package service

// CodeGenerator produces the numeric one-time codes used for account activation.
type CodeGenerator interface {
	// Generate returns a fresh activation code as a digit string.
	Generate() (string, error)
}
