package content

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	names := []string{"HeroCarousel", "ProductTabs", "Footer"}
	require.Equal(t, "HeroCarousel", Suggest("herocarousle", names))
	require.Equal(t, "Footer", Suggest("fotter", names))
	require.Empty(t, Suggest("Accordion", names))
	require.Empty(t, Suggest("", names))
	require.Empty(t, Suggest("x", nil))
}

func TestStaticProviderFind(t *testing.T) {
	ctx := context.Background()
	p := NewStaticProvider(Component{Name: "HeroCarousel", Kind: KindCarousel}, Component{Name: "ProductTabs", Kind: KindTabs})

	c, err := p.Component(ctx, "producttabs")
	require.NoError(t, err)
	require.Equal(t, KindTabs, c.Kind)

	_, err = p.Component(ctx, "ProductTab")
	require.ErrorIs(t, err, ErrNotFound)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "ProductTabs", nf.Suggestion)
	require.Contains(t, err.Error(), "did you mean")

	all, err := p.Components(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestStaticProviderHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStaticProvider().Components(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFileProvider(t *testing.T) {
	ctx := context.Background()
	p := FileProvider{Path: filepath.Join("testdata", "home.json")}
	all, err := p.Components(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	c, err := p.Component(ctx, "Footer")
	require.NoError(t, err)
	require.Equal(t, KindLinkList, c.Kind)

	_, err = FileProvider{Path: filepath.Join(t.TempDir(), "missing.json")}.Components(ctx)
	require.Error(t, err)
}
