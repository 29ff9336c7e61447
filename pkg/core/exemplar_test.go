package core_test

import (
	"testing"

	"exemplarcheck/pkg/core"

	"github.com/stretchr/testify/require"
)

func TestExtractKeysDefault(t *testing.T) {
	keys, err := core.ExtractKeys([]core.Exemplar{
		core.NewExemplar("What is 2+2?", "4"),
	})
	require.NoError(t, err)
	require.Equal(t, "question", keys.Question)
	require.Equal(t, "answer", keys.Answer)
}

func TestExtractKeysRespectsRecordKeys(t *testing.T) {
	exemplars := []core.Exemplar{
		{Fields: []core.Field{
			{Key: "prompt", Value: "hello"},
			{Key: "completion", Value: "world"},
			{Key: "added_at", Value: "2024-01-01T00:00:00Z"},
		}},
	}
	keys, err := core.ExtractKeys(exemplars)
	require.NoError(t, err)
	require.Equal(t, "prompt", keys.Question)
	require.Equal(t, "completion", keys.Answer)
}

func TestExtractKeysEmptySet(t *testing.T) {
	_, err := core.ExtractKeys(nil)
	require.ErrorIs(t, err, core.ErrEmptyExemplarSet)
}

func TestExtractKeysTooFewFields(t *testing.T) {
	_, err := core.ExtractKeys([]core.Exemplar{
		{Fields: []core.Field{{Key: "question", Value: "orphan"}}},
	})
	require.ErrorIs(t, err, core.ErrTooFewFields)
}

func TestNewSetRejectsInconsistentKeys(t *testing.T) {
	_, err := core.NewSet([]core.Exemplar{
		core.NewExemplar("q1", "a1"),
		{Fields: []core.Field{
			{Key: "prompt", Value: "q2"},
			{Key: "completion", Value: "a2"},
		}},
	})
	require.ErrorIs(t, err, core.ErrInconsistentKeys)
}

func TestNewSetCopiesInput(t *testing.T) {
	input := []core.Exemplar{core.NewExemplar("q", "a")}
	set, err := core.NewSet(input)
	require.NoError(t, err)

	input[0].Fields[1].Value = "mutated"
	got, ok := set.Items()[0].Get("answer")
	require.True(t, ok)
	require.Equal(t, "a", got)
}

func TestWithValueLeavesReceiverUntouched(t *testing.T) {
	original := core.NewExemplar("q", "old")
	updated := original.WithValue("answer", "new")

	gotOld, _ := original.Get("answer")
	gotNew, _ := updated.Get("answer")
	require.Equal(t, "old", gotOld)
	require.Equal(t, "new", gotNew)
}

func TestWithValuePreservesMetadataFields(t *testing.T) {
	ex := core.Exemplar{Fields: []core.Field{
		{Key: "question", Value: "q"},
		{Key: "answer", Value: "a"},
		{Key: "added_at", Value: "2024-01-01T00:00:00Z"},
	}}
	updated := ex.WithValue("answer", "b")

	require.Len(t, updated.Fields, 3)
	require.Equal(t, "question", updated.Fields[0].Key)
	stamp, ok := updated.Get("added_at")
	require.True(t, ok)
	require.Equal(t, "2024-01-01T00:00:00Z", stamp)
}

func TestGetMissingKey(t *testing.T) {
	_, ok := core.NewExemplar("q", "a").Get("nope")
	require.False(t, ok)
}
