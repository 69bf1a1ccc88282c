package gallery_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/warmachine/internal/db"
	"github.com/2beens/warmachine/internal/gallery"
)

func testRepoSetup(t *testing.T) *gallery.Repo {
	t.Helper()
	d, err := db.OpenTestSQLite(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = d.Close()
	})
	return gallery.NewRepo(d.DB)
}

func TestRepo(t *testing.T) {
	repo := testRepoSetup(t)
	ctx := context.Background()

	items, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	first, err := repo.Add(ctx, gallery.Item{
		Name:      gofakeit.Noun(),
		Category:  "sketch",
		Date:      "2024-01-01",
		Filename:  "/uploads/drawing_1_1000.png",
		UserID:    1,
		CreatedAt: 1000,
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := repo.Add(ctx, gallery.Item{
		Name:      gofakeit.Noun(),
		Category:  "painting",
		Date:      "2024-01-02",
		Filename:  "/uploads/drawing_2_2000.png",
		UserID:    2,
		CreatedAt: 2000,
	})
	require.NoError(t, err)

	items, err = repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
	assert.Equal(t, *first, items[1])

	items, err = repo.List(ctx, "sketch")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, items[0].ID)

	items, err = repo.List(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, items)
}
