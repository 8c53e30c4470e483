package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sixSections() []Section {
	return []Section{
		{ID: "website-solutions", Offset: 0},
		{ID: "automation-workflow", Offset: 500},
		{ID: "growth-seo", Offset: 1200},
	}
}

func TestNavigator_FirstSectionStartsActive(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)
	assert.Equal(t, "website-solutions", nav.Active())
}

func TestNavigator_SpyActivatesLastReachedSection(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)

	changed := nav.Spy(1300)
	assert.True(t, changed)
	assert.Equal(t, "growth-seo", nav.Active(), "offset 1200 <= 1300+300")
}

func TestNavigator_SpyLookaheadBoundary(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)

	nav.Spy(900) // 1200 <= 900+300 exactly
	assert.Equal(t, "growth-seo", nav.Active())

	nav2 := NewNavigator(sixSections(), 0, 0)
	nav2.Spy(899)
	assert.Equal(t, "automation-workflow", nav2.Active())
}

func TestNavigator_SpyReportsNoChange(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)
	assert.False(t, nav.Spy(0), "still inside the first section")
	assert.True(t, nav.Spy(600))
	assert.False(t, nav.Spy(650))
}

func TestNavigator_SelectReturnsMarginAdjustedTarget(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)

	target, ok := nav.Select("growth-seo")
	require.True(t, ok)
	assert.Equal(t, 1200-DefaultHeaderMargin, target)
	assert.Equal(t, "growth-seo", nav.Active())
}

func TestNavigator_SelectClampsAtTop(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)
	target, ok := nav.Select("website-solutions")
	require.True(t, ok)
	assert.Equal(t, 0, target)
}

func TestNavigator_SelectUnknownID(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)
	_, ok := nav.Select("time-travel")
	assert.False(t, ok)
	assert.Equal(t, "website-solutions", nav.Active())
}

func TestNavigator_SelectWinsThenSpyReconciles(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)

	// user jumps to the last category
	_, ok := nav.Select("growth-seo")
	require.True(t, ok)
	assert.Equal(t, "growth-seo", nav.Active())

	// then scrolls back toward the top
	nav.Spy(100)
	assert.Equal(t, "website-solutions", nav.Active())
}

func TestNavigator_CustomLookaheadAndMargin(t *testing.T) {
	nav := NewNavigator(sixSections(), 50, 10)

	nav.Spy(460)
	assert.Equal(t, "automation-workflow", nav.Active(), "500 <= 460+50")

	target, ok := nav.Select("automation-workflow")
	require.True(t, ok)
	assert.Equal(t, 490, target)
}

func TestNavigator_SetOffsetsKeepsActive(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)
	_, _ = nav.Select("automation-workflow")

	nav.SetOffsets([]Section{
		{ID: "website-solutions", Offset: 0},
		{ID: "automation-workflow", Offset: 700},
		{ID: "growth-seo", Offset: 1600},
	})
	assert.Equal(t, "automation-workflow", nav.Active())

	target, ok := nav.Select("automation-workflow")
	require.True(t, ok)
	assert.Equal(t, 700-DefaultHeaderMargin, target)
}

func TestNavigator_SetOffsetsDropsVanishedSection(t *testing.T) {
	nav := NewNavigator(sixSections(), 0, 0)
	_, _ = nav.Select("growth-seo")

	nav.SetOffsets([]Section{{ID: "website-solutions", Offset: 0}})
	assert.Equal(t, "website-solutions", nav.Active())
}

func TestNavigator_EmptySections(t *testing.T) {
	nav := NewNavigator(nil, 0, 0)
	assert.Empty(t, nav.Active())
	assert.False(t, nav.Spy(1000))
	_, ok := nav.Select("anything")
	assert.False(t, ok)
}
