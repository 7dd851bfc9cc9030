package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/zerror"
)

func TestZError(t *testing.T) {
	notFound := zerror.NewNotFound("THING_NOT_FOUND", "thing not found")

	t.Run("Should format without parent", func(t *testing.T) {
		assert.Equal(t, "Code=THING_NOT_FOUND, Msg=thing not found", notFound.Error())
	})

	t.Run("Should match predefined error after wrapping", func(t *testing.T) {
		parent := errors.New("no rows")
		err := fmt.Errorf("get thing: %w", notFound.WrapParent(parent))

		assert.ErrorIs(t, err, notFound)
		assert.ErrorIs(t, err, parent)

		var zErr zerror.ZError
		if assert.ErrorAs(t, err, &zErr) {
			assert.Equal(t, zerror.StatusNotFound, zErr.Status())
			assert.Equal(t, "thing not found", zErr.Msg())
			assert.Equal(t, parent, zErr.Parent())
		}
	})

	t.Run("Should not match a different code", func(t *testing.T) {
		other := zerror.NewNotFound("OTHER_NOT_FOUND", "other not found")
		assert.NotErrorIs(t, notFound, other)
	})

	t.Run("Should keep nil parent", func(t *testing.T) {
		assert.Nil(t, notFound.WrapParent(nil).Parent())
	})
}
