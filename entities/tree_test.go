package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularies(t *testing.T) {
	t.Run("health accepts only the five fixed values", func(t *testing.T) {
		for _, h := range AllHealthStatuses() {
			assert.True(t, h.Valid(), string(h))
		}
		assert.False(t, HealthStatus("").Valid())
		assert.False(t, HealthStatus("Okay").Valid())
		assert.False(t, HealthStatus("excellent").Valid(), "values are case sensitive")
	})

	t.Run("production accepts only the five fixed values", func(t *testing.T) {
		for _, p := range AllProductionLevels() {
			assert.True(t, p.Valid(), string(p))
		}
		assert.False(t, ProductionLevel("Huge").Valid())
	})
}

func TestValidate(t *testing.T) {
	valid := func() TreeRecord {
		return TreeRecord{
			TreeNumber: "A-1",
			TreeName:   "Old Mango",
			Species:    "Mangifera indica",
			Health:     HealthGood,
			Production: ProductionMedium,
		}
	}

	t.Run("complete record passes", func(t *testing.T) {
		r := valid()
		assert.NoError(t, r.Validate())
	})

	t.Run("mandatory fields", func(t *testing.T) {
		r := valid()
		r.TreeNumber = ""
		assert.ErrorIs(t, r.Validate(), ErrTreeNumberRequired)

		r = valid()
		r.TreeName = ""
		assert.ErrorIs(t, r.Validate(), ErrTreeNameRequired)

		r = valid()
		r.Species = ""
		assert.ErrorIs(t, r.Validate(), ErrSpeciesRequired)
	})

	t.Run("enum values enforced", func(t *testing.T) {
		r := valid()
		r.Health = "Thriving"
		assert.ErrorIs(t, r.Validate(), ErrBadHealth)

		r = valid()
		r.Production = ""
		assert.ErrorIs(t, r.Validate(), ErrBadProduction)
	})

	t.Run("quantity must be non-negative", func(t *testing.T) {
		r := valid()
		neg := -1.0
		r.ProductionQuantity = &neg
		assert.ErrorIs(t, r.Validate(), ErrNegativeQuantity)

		zero := 0.0
		r.ProductionQuantity = &zero
		assert.NoError(t, r.Validate())
	})

	t.Run("optional fields may all be empty", func(t *testing.T) {
		r := valid()
		assert.NoError(t, r.Validate())
		assert.Nil(t, r.Location)
		assert.Nil(t, r.ProductionQuantity)
	})
}
