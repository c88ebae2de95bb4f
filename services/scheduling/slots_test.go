package scheduling

import (
	"testing"
	"time"

	"fletero/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDaySlots(t *testing.T) {
	loc := config.BusinessLocation()
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, loc)

	slots := GenerateDaySlots(day)

	// Two slots per operating hour, opening through closing inclusive.
	require.Len(t, slots, 2*(20-6+1))

	assert.Equal(t, "2025-11-03T06:00:00-05:00", slots[0].Format(time.RFC3339))
	assert.Equal(t, "2025-11-03T20:30:00-05:00", slots[len(slots)-1].Format(time.RFC3339))

	for i, slot := range slots {
		minute := slot.Minute()
		assert.True(t, minute == 0 || minute == 30, "slot %v has minute %d", slot, minute)
		if i > 0 {
			assert.True(t, slots[i-1].Before(slot), "slots must ascend strictly")
			assert.Equal(t, 30*time.Minute, slot.Sub(slots[i-1]))
		}
		_, offset := slot.Zone()
		assert.Equal(t, -5*3600, offset)
	}
}

func TestGenerateDaySlotsDeterministic(t *testing.T) {
	loc := config.BusinessLocation()
	day := time.Date(2026, 2, 14, 0, 0, 0, 0, loc)

	first := GenerateDaySlots(day)
	second := GenerateDaySlots(day)
	assert.Equal(t, first, second)
}
