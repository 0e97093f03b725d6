package memory

import (
	"context"
	"strconv"
	"testing"

	"pet-insurance-leads/internal/ports/tickets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketRepo_NumbersAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepo()

	for i := 1; i <= 3; i++ {
		n, err := repo.Create(ctx, tickets.Draft{Title: "t" + strconv.Itoa(i), Labels: []string{"site:demo"}})
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{items[0].Number, items[1].Number, items[2].Number})
	assert.False(t, items[0].CreatedAt.IsZero())
}

func TestTicketRepo_ListCapsAtPageSize(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepo()
	for i := 0; i < tickets.PageSize+5; i++ {
		_, err := repo.Create(ctx, tickets.Draft{Title: "t"})
		require.NoError(t, err)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, tickets.PageSize)
	assert.Equal(t, tickets.PageSize+5, items[0].Number)
}

func TestTicketRepo_LabelsAreCopied(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepo()

	labels := []string{"type:online"}
	_, err := repo.Create(ctx, tickets.Draft{Title: "t", Labels: labels})
	require.NoError(t, err)
	labels[0] = "mutated"

	items, _ := repo.List(ctx)
	items[0].Labels[0] = "mutated again"

	items, _ = repo.List(ctx)
	assert.Equal(t, []string{"type:online"}, items[0].Labels)
}

func TestTicketRepo_Errors(t *testing.T) {
	repo := NewTicketRepo()

	_, err := repo.Create(context.Background(), tickets.Draft{Title: "  "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.Create(ctx, tickets.Draft{Title: "t"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
