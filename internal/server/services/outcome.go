package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mdterp/internal/common"
)

// StepOutcome reports one optional step of a multi-step operation. A step
// that was not attempted has a nil Err.
type StepOutcome struct {
	Attempted bool
	Err       error
}

func (o StepOutcome) OK() bool { return o.Attempted && o.Err == nil }

func attempted(err error) StepOutcome {
	return StepOutcome{Attempted: true, Err: err}
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", validationError("%s is required", field)
	}
	return v, nil
}
