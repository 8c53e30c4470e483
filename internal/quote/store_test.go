package quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
	"github.com/jxt-gindran/jxingwebsite/internal/testutil"
)

// fakeStateRepo records every saved snapshot in order.
type fakeStateRepo struct {
	initial []domain.QuoteLineItem
	saves   [][]domain.QuoteLineItem
}

func (r *fakeStateRepo) Load(ctx context.Context) []domain.QuoteLineItem {
	if r.initial == nil {
		return []domain.QuoteLineItem{}
	}
	return r.initial
}

func (r *fakeStateRepo) Save(ctx context.Context, items []domain.QuoteLineItem) error {
	snapshot := make([]domain.QuoteLineItem, len(items))
	copy(snapshot, items)
	r.saves = append(r.saves, snapshot)
	return nil
}

var (
	webCategory = &domain.ServiceCategory{ID: "website-solutions", Title: "Website Solutions"}
	seoCategory = &domain.ServiceCategory{ID: "growth-seo", Title: "Growth-Driven SEO"}

	corporateSub = domain.SubService{ID: "corporate-website", Title: "Corporate Website", Price: "988", PriceType: "One-time"}
	seoPlusSub   = domain.SubService{ID: "seo-plus", Title: "SEO Plus (Monthly)", Price: "1,308", PriceType: "Monthly"}
)

func newTestStore(t *testing.T) (*Store, *fakeStateRepo) {
	t.Helper()
	repo := &fakeStateRepo{}
	return NewStore(context.Background(), repo), repo
}

func TestStore_ToggleAdds(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	added, err := store.Toggle(ctx, webCategory, corporateSub)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Has("website-solutions::corporate-website"))
	require.Len(t, repo.saves, 1)
	assert.Equal(t, "website-solutions::corporate-website", repo.saves[0][0].ID)
}

func TestStore_ToggleIsInvolution(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	before := store.Items()
	added, err := store.Toggle(ctx, webCategory, corporateSub)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = store.Toggle(ctx, webCategory, corporateSub)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, before, store.Items())
}

func TestStore_ToggleKeepsUniqueIDs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// arbitrary toggle sequence
	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	_, _ = store.Toggle(ctx, seoCategory, seoPlusSub)
	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	_, _ = store.Toggle(ctx, seoCategory, seoPlusSub)
	_, _ = store.Toggle(ctx, seoCategory, seoPlusSub)

	items := store.Items()
	seen := map[string]bool{}
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
	assert.Equal(t, 2, len(items))
}

func TestStore_RemoveAndUnknownNoop(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	savesBefore := len(repo.saves)

	require.NoError(t, store.Remove(ctx, "no::such-item"))
	assert.Equal(t, savesBefore, len(repo.saves), "unknown id must not persist")

	require.NoError(t, store.Remove(ctx, "website-solutions::corporate-website"))
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, savesBefore+1, len(repo.saves))
}

func TestStore_SetNote(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	id := "website-solutions::corporate-website"

	require.NoError(t, store.SetNote(ctx, id, "need bilingual content"))
	assert.Equal(t, "need bilingual content", store.Items()[0].Notes)

	savesBefore := len(repo.saves)
	require.NoError(t, store.SetNote(ctx, id, "need bilingual content"))
	assert.Equal(t, savesBefore, len(repo.saves), "unchanged note must not persist")

	require.NoError(t, store.SetNote(ctx, "no::such-item", "hello"))
	assert.Equal(t, savesBefore, len(repo.saves))
}

func TestStore_Clear(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx), "clearing empty selection is a no-op")
	assert.Empty(t, repo.saves)

	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	_, _ = store.Toggle(ctx, seoCategory, seoPlusSub)
	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, repo.saves[len(repo.saves)-1])
}

func TestStore_EveryMutationPersistsFullState(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	_, _ = store.Toggle(ctx, seoCategory, seoPlusSub)
	require.NoError(t, store.SetNote(ctx, "growth-seo::seo-plus", "ASAP"))
	require.NoError(t, store.Remove(ctx, "website-solutions::corporate-website"))

	require.Len(t, repo.saves, 4)
	last := repo.saves[3]
	require.Len(t, last, 1)
	assert.Equal(t, "growth-seo::seo-plus", last[0].ID)
	assert.Equal(t, "ASAP", last[0].Notes)
}

func TestStore_NotifiesSubscribers(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	calls := 0
	store.Subscribe(func() { calls++ })

	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	assert.Equal(t, 1, calls)

	require.NoError(t, store.SetNote(ctx, "no::such-item", "x"))
	assert.Equal(t, 1, calls, "no-op mutations do not notify")

	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, 2, calls)
}

func TestStore_HydratesFromRepo(t *testing.T) {
	repo := &fakeStateRepo{initial: []domain.QuoteLineItem{
		testutil.NewTestLineItem("social-media", "social-growth", "1,088", testutil.WithPriceType("Per Platform/Mo")),
	}}
	store := NewStore(context.Background(), repo)
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Has("social-media::social-growth"))
}

func TestStore_SaveErrorSurfacesButStateStands(t *testing.T) {
	store := NewStore(context.Background(), testutil.FailingQuoteStateRepo{})
	ctx := context.Background()

	added, err := store.Toggle(ctx, webCategory, corporateSub)
	assert.True(t, added)
	require.Error(t, err)
	assert.ErrorIs(t, err, testutil.ErrSaveFailed)
	assert.Equal(t, 1, store.Len(), "in-memory state keeps the mutation")
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	items := store.Items()
	items[0].Notes = "mutated copy"
	assert.Empty(t, store.Items()[0].Notes)
}

func TestStore_Totals(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, _ = store.Toggle(ctx, webCategory, corporateSub)
	_, _ = store.Toggle(ctx, seoCategory, seoPlusSub)

	totals := store.Totals()
	assert.Equal(t, 988, totals.Upfront)
	assert.Equal(t, 1308, totals.Monthly)
}
