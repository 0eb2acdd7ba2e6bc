package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhiyi-school/ssd-practest/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "x"),
			validator.MaxLen("name", "x", 3),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "  "),
			validator.MaxLen("bio", "abcd", 3),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.True(t, verrs.Has("name"))
		assert.True(t, verrs.Has("bio"))
		assert.False(t, verrs.Has("other"))
		assert.Equal(t, []string{"field is required", "must be at most 3 characters long"}, verrs.Messages())
		assert.Equal(t, "validation failed: name: field is required; bio: must be at most 3 characters long", err.Error())
	})

	t.Run("wrapped errors", func(t *testing.T) {
		err := fmt.Errorf("bind: %w", validator.Apply(validator.RequiredString("a", "")))
		assert.True(t, validator.IsValidationError(err))
		assert.False(t, validator.IsValidationError(errors.New("other")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestPresent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"empty", "", false},
		{"blank", " \t\n", false},
		{"text", "laptop", true},
		{"number", 42.0, true},
		{"object", map[string]any{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.Present("searchTerm", tt.value).Check())
		})
	}
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.Present("searchTerm", nil)
	custom := base.WithMessage("Search term is required")

	assert.Equal(t, "field is required", base.Error.Message)
	assert.Equal(t, "Search term is required", custom.Error.Message)
	assert.Equal(t, "searchTerm", custom.Error.Field)
}

func TestMaxLen_CountsCharacters(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxLen("f", strings.Repeat("é", 3), 3).Check())
	assert.False(t, validator.MaxLen("f", strings.Repeat("é", 4), 3).Check())
}
