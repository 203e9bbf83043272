package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octolist/pkg/domain/model"
)

func TestInstant(t *testing.T) {
	t.Run("Parsed arm", func(t *testing.T) {
		at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		in := model.ParsedInstant(at)

		gt.True(t, in.Parsed())
		gt.True(t, in.Time().Equal(at))
		gt.Equal(t, in.Raw(), "")
	})

	t.Run("Raw arm", func(t *testing.T) {
		in := model.RawInstant("2024-01-15T99:99:99Z")

		gt.True(t, !in.Parsed())
		gt.Equal(t, in.Raw(), "2024-01-15T99:99:99Z")
		gt.True(t, in.Time().IsZero())
	})
}
