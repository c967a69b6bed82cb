package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arborlog/entities"
)

func rec(number, name, species string) entities.TreeRecord {
	return entities.TreeRecord{TreeNumber: number, TreeName: name, Species: species}
}

func numbers(records []entities.TreeRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.TreeNumber
	}
	return out
}

func TestFilter(t *testing.T) {
	records := []entities.TreeRecord{
		rec("A-1", "Old Mango", "Mangifera indica"),
		rec("B-7", "Lemon", "Citrus limon"),
		rec("A-2", "Young Mango", "Mangifera indica"),
	}

	t.Run("empty query matches everything in order", func(t *testing.T) {
		got := Filter(records, "")
		require.Len(t, got, 3)
		assert.Equal(t, []string{"A-1", "B-7", "A-2"}, numbers(got))
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := Filter(records, "mango")
		assert.Equal(t, []string{"A-1", "A-2"}, numbers(got))
	})

	t.Run("matches tree number", func(t *testing.T) {
		got := Filter(records, "b-7")
		require.Len(t, got, 1)
		assert.Equal(t, "Lemon", got[0].TreeName)
	})

	t.Run("matches species substring", func(t *testing.T) {
		got := Filter(records, "CITRUS")
		require.Len(t, got, 1)
		assert.Equal(t, "B-7", got[0].TreeNumber)
	})

	t.Run("no match on other fields", func(t *testing.T) {
		withNotes := append([]entities.TreeRecord{}, records...)
		withNotes[0].Notes = "zanzibar"
		assert.Empty(t, Filter(withNotes, "zanzibar"))
	})

	t.Run("no hits yields empty slice", func(t *testing.T) {
		assert.Empty(t, Filter(records, "oak"))
	})
}

func TestSortByTreeNumber(t *testing.T) {
	t.Run("numeric runs compare by value", func(t *testing.T) {
		in := []entities.TreeRecord{
			rec("A-10", "", "x"), rec("A-2", "", "x"), rec("A-1", "", "x"),
		}
		got := SortByTreeNumber(in)
		assert.Equal(t, []string{"A-1", "A-2", "A-10"}, numbers(got))
	})

	t.Run("stable for duplicate numbers", func(t *testing.T) {
		in := []entities.TreeRecord{
			rec("B-1", "second", "x"),
			rec("A-1", "first", "x"),
			rec("B-1", "third", "x"),
		}
		got := SortByTreeNumber(in)
		require.Equal(t, []string{"A-1", "B-1", "B-1"}, numbers(got))
		assert.Equal(t, "second", got[1].TreeName)
		assert.Equal(t, "third", got[2].TreeName)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := []entities.TreeRecord{rec("Z", "", ""), rec("A", "", "")}
		_ = SortByTreeNumber(in)
		assert.Equal(t, []string{"Z", "A"}, numbers(in))
	})

	t.Run("case differences do not split runs", func(t *testing.T) {
		in := []entities.TreeRecord{rec("b-2", "", ""), rec("B-10", "", ""), rec("b-1", "", "")}
		got := SortByTreeNumber(in)
		assert.Equal(t, []string{"b-1", "b-2", "B-10"}, numbers(got))
	})
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare("A-2", "A-10"))
	assert.Positive(t, Compare("A-10", "A-9"))
	assert.Zero(t, Compare("A-1", "A-1"))
}
