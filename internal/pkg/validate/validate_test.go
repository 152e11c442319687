package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string  `validate:"required"`
	Budget float64 `validate:"min=0"`
	Status string  `validate:"oneof=active paused"`
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		err := Struct(sample{Name: "Clínica Belle", Budget: 100, Status: "active"})
		assert.NoError(t, err)
	})

	t.Run("Violations Are Joined", func(t *testing.T) {
		err := Struct(sample{Budget: -1, Status: "gone"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
		assert.Contains(t, err.Error(), "budget must be at least 0")
		assert.Contains(t, err.Error(), "status must be one of: active paused")
	})

	t.Run("Non-Struct Input", func(t *testing.T) {
		assert.NotPanics(t, func() {
			err := Struct("not a struct")
			assert.Error(t, err)
		})
	})
}
