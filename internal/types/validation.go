package types

import (
	"fmt"

	xerrors "github.com/omnidex-ai/omnidex/client/internal/errors"
)

// Construction-time checks for locally built values. Decoded values
// are validated field by field by their UnmarshalJSON implementations;
// these helpers cover the direct-construction path.

func constructErr(model, field string, reason error) error {
	return xerrors.NewConstruction(model, field, reason)
}

func requireField(model, field, v string) error {
	if v == "" {
		return constructErr(model, field, fmt.Errorf("%s is required", field))
	}
	return nil
}

func requirePositive(model, field string, v int) error {
	if v <= 0 {
		return constructErr(model, field, fmt.Errorf("%s must be > 0, got %d", field, v))
	}
	return nil
}
