package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"arborlog/entities"
)

func TestXLSX(t *testing.T) {
	art, err := XLSX([]entities.TreeRecord{bareRecord("A-10"), fullRecord()}, exportedAt)
	require.NoError(t, err)
	assert.Equal(t, "ArborLog_Inventory_2024-06-01.xlsx", art.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(art.Content))
	require.NoError(t, err)
	defer f.Close()

	t.Run("single Inventory sheet", func(t *testing.T) {
		assert.Equal(t, []string{"Inventory"}, f.GetSheetList())
	})

	t.Run("header row matches the tabular schema", func(t *testing.T) {
		rows, err := f.GetRows(xlsxSheet)
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		assert.Equal(t, csvColumns, rows[0])
	})

	t.Run("rows are sorted and carry the composed values", func(t *testing.T) {
		rows, err := f.GetRows(xlsxSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		// fullRecord is A-2, sorts before A-10
		assert.Equal(t, "A-2", rows[1][0])
		assert.Equal(t, "Old Mango", rows[1][1])
		assert.Equal(t, "30", rows[1][6])
		assert.Equal(t, "A-10", rows[2][0])
	})

	t.Run("coordinates survive as numbers", func(t *testing.T) {
		lat, err := f.GetCellValue(xlsxSheet, "H2")
		require.NoError(t, err)
		assert.Equal(t, "13.7563", lat)
	})
}
