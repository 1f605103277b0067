package apperr

import "fmt"

// Error codes
const (
	CodeDependency = "DEPENDENCY_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeDelivery   = "DELIVERY_ERROR"
	CodeConfig     = "CONFIG_ERROR"
)

type WidgetError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *WidgetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *WidgetError) Unwrap() error {
	return e.Cause
}

// DependencyError reports that an external library never became available.
type DependencyError struct {
	*WidgetError
	Dependency string
}

func NewDependencyError(message, dependency string) *DependencyError {
	return &DependencyError{
		WidgetError: &WidgetError{
			Message: message,
			Code:    CodeDependency,
			Context: map[string]any{"dependency": dependency},
		},
		Dependency: dependency,
	}
}

type ValidationError struct {
	*WidgetError
	Field string
}

func NewValidationError(message, field string) *ValidationError {
	return &ValidationError{
		WidgetError: &WidgetError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{"field": field},
		},
		Field: field,
	}
}

// DeliveryError wraps a failed send. Message is the text the user sees and
// may be empty when the underlying error carried none.
type DeliveryError struct {
	*WidgetError
	Service  string
	Template string
}

func NewDeliveryError(message, service, template string, cause error) *DeliveryError {
	return &DeliveryError{
		WidgetError: &WidgetError{
			Message: message,
			Code:    CodeDelivery,
			Context: map[string]any{
				"service":  service,
				"template": template,
			},
			Cause: cause,
		},
		Service:  service,
		Template: template,
	}
}

type ConfigError struct {
	*WidgetError
	Key string
}

func NewConfigError(message, key string, cause error) *ConfigError {
	return &ConfigError{
		WidgetError: &WidgetError{
			Message: message,
			Code:    CodeConfig,
			Context: map[string]any{"key": key},
			Cause:   cause,
		},
		Key: key,
	}
}
