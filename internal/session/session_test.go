package session

import (
	"errors"
	"testing"

	"github.com/patik/inquirer-grouped-checkbox/internal/choice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDuplicateGroupKeys(t *testing.T) {
	_, err := New([]choice.Group[string]{
		{Key: "dup", Label: "One"},
		{Key: "dup", Label: "Two"},
	}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate group key")
}

func TestResultsContainEveryDeclaredGroupKey(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{})
	got := s.Results()
	require.Len(t, got, 2)
	assert.Equal(t, []string{}, got["fruits"])
	assert.Equal(t, []string{}, got["vegetables"])
}

func TestResultsPreserveInputOrder(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{})
	// Check banana before apple; output order must follow input order.
	s.Apply(MoveDown{})
	s.Apply(MoveDown{}) // banana
	s.Apply(ToggleCurrent{})
	s.Apply(MoveUp{}) // apple
	s.Apply(ToggleCurrent{})
	assert.Equal(t, []string{"apple", "banana"}, s.Results()["fruits"])
}

func TestInvertExampleSingleGroup(t *testing.T) {
	s, err := New([]choice.Group[int]{
		{Key: "group", Label: "Group", Choices: []choice.Choice[int]{
			{Value: 1, Checked: true},
			{Value: 2},
		}},
	}, Options{})
	require.NoError(t, err)
	s.Apply(GlobalInvert{})
	assert.Equal(t, []int{2}, s.Results()["group"])
}

func TestSubmitRequiredViolationStaysIdle(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Required: true})
	s.Apply(Submit{})
	assert.Equal(t, StatusIdle, s.Status())
	assert.Equal(t, RequiredMessage, s.Err())

	// No state lost: selection still works and a later submit passes.
	s.Apply(MoveDown{})
	s.Apply(ToggleCurrent{})
	assert.Empty(t, s.Err())
	s.Apply(Submit{})
	assert.Equal(t, StatusValidating, s.Status())
}

func TestValidationFailureReturnsToIdleWithMessage(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{})
	s.Apply(Submit{})
	require.Equal(t, StatusValidating, s.Status())

	s.FinishValidation(errors.New("pick a vegetable too"))
	assert.Equal(t, StatusIdle, s.Status())
	assert.Equal(t, "pick a vegetable too", s.Err())

	s.Apply(Submit{})
	s.FinishValidation(nil)
	assert.Equal(t, StatusDone, s.Status())
}

func TestEventsIgnoredWhileValidating(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{})
	s.Apply(Submit{})
	require.Equal(t, StatusValidating, s.Status())

	cursor := s.Cursor()
	s.Apply(MoveDown{})
	s.Apply(GlobalToggleAll{})
	s.Apply(AppendQuery{Rune: 'a'})
	assert.Equal(t, cursor, s.Cursor())
	assert.Empty(t, s.Query())
	for _, vals := range s.Results() {
		assert.Empty(t, vals)
	}
}

func TestEventsIgnoredAfterDone(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{})
	s.Apply(Submit{})
	s.FinishValidation(nil)
	require.Equal(t, StatusDone, s.Status())

	s.Apply(GlobalToggleAll{})
	for _, vals := range s.Results() {
		assert.Empty(t, vals)
	}
}

func TestFinishValidationOutsideValidatingIsNoOp(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{})
	s.FinishValidation(errors.New("stray"))
	assert.Equal(t, StatusIdle, s.Status())
	assert.Empty(t, s.Err())
}

func TestStatsExcludeDisabled(t *testing.T) {
	groups := []choice.Group[string]{
		{Key: "a", Label: "A", Choices: []choice.Choice[string]{
			{Value: "x", Checked: true},
			{Value: "y", Disabled: true, Checked: true},
			{Value: "z"},
		}},
		{Key: "b", Label: "B", Choices: []choice.Choice[string]{
			{Value: "w"},
		}},
	}
	s := mustSession(t, groups, Options{})
	assert.Equal(t, Stats{Selected: 1, Total: 2}, s.GroupStats("a"))
	assert.Equal(t, Stats{Selected: 0, Total: 1}, s.GroupStats("b"))
	assert.Equal(t, Stats{Selected: 1, Total: 3}, s.OverallStats())
}

func TestInlineErrorClearedByNextEvent(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Required: true})
	s.Apply(Submit{})
	require.NotEmpty(t, s.Err())
	s.Apply(MoveDown{})
	assert.Empty(t, s.Err())
}
