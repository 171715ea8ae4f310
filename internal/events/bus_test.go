package events

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promptlab/promptlab/internal/models"
)

func TestPublish_NoSubscribers(t *testing.T) {
	b := NewBus()
	require.NotPanics(t, func() {
		b.Publish(models.PromptFields{Role: "x"})
	})
}

func TestPublish_DeliversToSubscribersInOrder(t *testing.T) {
	b := NewBus()

	var order []string
	b.Subscribe(func(f models.PromptFields) { order = append(order, "first:"+f.Role) })
	b.Subscribe(func(f models.PromptFields) { order = append(order, "second:"+f.Role) })

	b.Publish(models.PromptFields{Role: "r"})
	require.Equal(t, []string{"first:r", "second:r"}, order)
}

func TestPublish_LastSubmissionWins(t *testing.T) {
	b := NewBus()

	var latest models.PromptFields
	b.Subscribe(func(f models.PromptFields) { latest = f })

	b.Publish(models.PromptFields{Role: "old"})
	b.Publish(models.PromptFields{Role: "new"})
	require.Equal(t, "new", latest.Role)
}

func TestPublish_SynchronousDelivery(t *testing.T) {
	b := NewBus()

	delivered := false
	b.Subscribe(func(models.PromptFields) { delivered = true })

	b.Publish(models.PromptFields{})
	require.True(t, delivered, "Publish must return only after handlers ran")
}
