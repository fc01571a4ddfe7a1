// Package advert builds the job advert prompt and sends it to the generative model.
package advert

import "fmt"

// APIKeyVariable is the configuration variable the API key is expected in.
const APIKeyVariable = "GEMINI_API_KEY"

// ProviderFailureMessage is the only text a caller sees when the provider fails.
const ProviderFailureMessage = "Failed to generate job advert. Please try again."

// EmptyContentPlaceholder replaces an empty model response.
const EmptyContentPlaceholder = "No content generated."

// ConfigurationError indicates the generator cannot run with its configuration
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("API key not found. Please set %s in your environment or .env file.", e.Variable)
}

// ProviderError indicates the outbound call failed or was rejected.
// Error() never includes the upstream detail; use Unwrap for diagnostics.
type ProviderError struct {
	Cause error
}

func (e *ProviderError) Error() string {
	return ProviderFailureMessage
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
