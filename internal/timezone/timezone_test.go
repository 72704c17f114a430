package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("UTC"))
	assert.True(t, IsValid(DefaultTimezone))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Zona/Inexistente"))
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Zona/Inexistente").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestNowIn(t *testing.T) {
	assert.Equal(t, time.UTC, NowIn("UTC").Location())
	assert.Equal(t, DefaultTimezone, NowIn("Zona/Inexistente").Location().String())
}
