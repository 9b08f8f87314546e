package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIDNumber(t *testing.T) {
	assert.Equal(t, "2023-001", NormalizeIDNumber("  2023-001\t"))
	assert.Equal(t, "2023 001", NormalizeIDNumber("2023 001"))
	assert.Equal(t, "", NormalizeIDNumber("   "))
}

func TestProfileID(t *testing.T) {
	a := ProfileID("ws-1", "2023-001")
	assert.Equal(t, a, ProfileID("ws-1", " 2023-001 "), "trimmed ID numbers map to the same profile")
	assert.NotEqual(t, a, ProfileID("ws-2", "2023-001"), "workspaces are isolated")
	assert.NotEqual(t, a, ProfileID("ws-1", "2023-002"))
	assert.Len(t, a, 36)
}

func TestProfilePatch_Apply(t *testing.T) {
	base := PersonFields{IDNumber: "1", FirstName: "Ana", LastName: "Cruz", Email: "ana@x.test"}
	first := " Anna "
	empty := ""
	got := ProfilePatch{FirstName: &first, Email: &empty}.Apply(base)

	assert.Equal(t, "Anna", got.FirstName)
	assert.Equal(t, "", got.Email)
	assert.Equal(t, "Cruz", got.LastName)
	assert.Equal(t, "1", got.IDNumber)
}
