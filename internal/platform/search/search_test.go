package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_NamePrefixBeatsContains(t *testing.T) {
	cands := []Candidate{
		{Key: "1", Name: "Ana Maria"},
		{Key: "2", Name: "Maria Silva"},
	}

	got := Rank(cands, "mar")
	require.Len(t, got, 2)

	// "Maria Silva" empieza con "mar" => 100; "Ana Maria" solo contiene => 50
	assert.Equal(t, "2", got[0].Key)
	assert.Equal(t, 100, got[0].Score)
	assert.Equal(t, "1", got[1].Key)
	assert.Equal(t, 50, got[1].Score)
}

func TestRank_DigitsPrefix(t *testing.T) {
	cands := []Candidate{
		{Key: "1", Name: "Maria Silva", Digits: "11122233344"},
	}

	got := Rank(cands, "22233")
	require.Empty(t, got) // "22233" no es prefijo de "111..."

	got = Rank(cands, "111.222")
	require.Len(t, got, 1)
	assert.Equal(t, 80, got[0].Score)
}

func TestRank_AdditiveScores(t *testing.T) {
	cands := []Candidate{
		{Key: "1", Name: "123 Clinica", Digits: "12399"},
	}

	got := Rank(cands, "123")
	require.Len(t, got, 1)
	assert.Equal(t, 180, got[0].Score) // prefijo de nombre + prefijo numérico
}

func TestRank_ExcludesZeroAndOrdersDesc(t *testing.T) {
	cands := []Candidate{
		{Key: "a", Name: "Pedro"},
		{Key: "b", Name: "Maria Silva"},
		{Key: "c", Name: "Ana Maria"},
	}

	got := Rank(cands, "mar")
	require.Len(t, got, 2)
	for i := range got {
		assert.Greater(t, got[i].Score, 0)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
		}
	}
}

func TestRank_EmptyQuery(t *testing.T) {
	cands := []Candidate{{Key: "1", Name: "Maria"}}
	assert.Nil(t, Rank(cands, "   "))
}

func TestFilter_EmptyQueryFlag(t *testing.T) {
	cands := []Candidate{
		{Key: "1", Name: "Maria"},
		{Key: "2", Name: "Pedro"},
	}

	all := Filter(cands, "", true)
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].Key) // orden de entrada

	none := Filter(cands, "", false)
	assert.Empty(t, none)
}

func TestRank_StableTieBreak(t *testing.T) {
	cands := []Candidate{
		{Key: "1", Name: "Maria A"},
		{Key: "2", Name: "Maria B"},
	}

	got := Rank(cands, "maria")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Key)
	assert.Equal(t, "2", got[1].Key)
}
