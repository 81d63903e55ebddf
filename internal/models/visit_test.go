package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinProducts(t *testing.T) {
	assert.Equal(t, "", JoinProducts(nil))
	assert.Equal(t, "CIGARETTE, HOOKAH", JoinProducts([]string{"CIGARETTE", "HOOKAH"}))

	// canonical order regardless of input order
	assert.Equal(t, "CIGARETTE, HOOKAH", JoinProducts([]string{"HOOKAH", "CIGARETTE"}))

	assert.Equal(t,
		"CIGARETTE, ROLLING PAPERS, CIGARS, HOOKAH, ZIPPO LIGHTERS, NONE",
		JoinProducts([]string{"NONE", "ZIPPO LIGHTERS", "HOOKAH", "CIGARS", "ROLLING PAPERS", "CIGARETTE"}))

	// unknown names are dropped, duplicates collapse
	assert.Equal(t, "CIGARS", JoinProducts([]string{"CIGARS", "CIGARS", "MATCHES"}))
}
