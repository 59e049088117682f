package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "lee-sang-hyeok", Slugify("Lee Sang-hyeok"))
	assert.Equal(t, "faker", Slugify("  Faker!! "))
	assert.Equal(t, "dont-stop", Slugify("Don't   stop"))
}

func TestFloatRound(t *testing.T) {
	assert.Equal(t, 3.33, FloatRound(10.0/3.0, 2))
	assert.Equal(t, 2.5, FloatRound(2.5, 1))
	assert.Equal(t, 7.0, FloatRound(6.996, 2))
}
