package dto

// MutationResult is the success envelope returned by mutations.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewMutationResult creates a successful MutationResult
func NewMutationResult(message string) MutationResult {
	return MutationResult{
		Success: true,
		Message: message,
	}
}
