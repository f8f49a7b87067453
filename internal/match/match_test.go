package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accphys/madview/models"
)

func testRules() models.MatchingRules {
	return models.MatchingRules{
		"envx": {"quadrupole": {"k1"}},
		"envy": {"quadrupole": {"k1"}},
		"x":    {"quadrupole": {"k1"}, "sbend": {"angle"}, "kicker": {"hkick"}},
		"y":    {"quadrupole": {"k1"}, "sbend": {"angle"}, "kicker": {"vkick"}},
	}
}

func TestTable_Knobs(t *testing.T) {
	tbl := NewTable(testRules())

	assert.Equal(t, []string{"k1"}, tbl.Knobs("envx", "quadrupole"))
	assert.Equal(t, []string{"hkick"}, tbl.Knobs("x", "kicker"))
	assert.Nil(t, tbl.Knobs("envx", "sbend"))
	assert.Nil(t, tbl.Knobs("betx", "quadrupole"))
}

func TestTable_Quantities(t *testing.T) {
	tbl := NewTable(testRules())

	assert.Equal(t, []string{"envx", "envy", "x", "y"}, tbl.Quantities())
}

func TestTable_Categories(t *testing.T) {
	tbl := NewTable(testRules())

	assert.Equal(t, []string{"kicker", "quadrupole", "sbend"}, tbl.Categories("x"))
	assert.Empty(t, tbl.Categories("betx"))
}

func TestConjugate(t *testing.T) {
	assert.Equal(t, "envy", Conjugate("envx"))
	assert.Equal(t, "envx", Conjugate("envy"))
	assert.Equal(t, "y", Conjugate("x"))
	assert.Equal(t, "s", Conjugate("s"))
	assert.Equal(t, "", Conjugate(""))
}

func TestSession_AddReplacesSameElement(t *testing.T) {
	// Arrange
	s := NewSession(NewTable(testRules()))

	// Act: a second pick on the same element replaces the first value.
	s.AddConstraint(Constraint{Quantity: "envx", Element: "q1", Category: "quadrupole", Value: 1.5})
	s.AddConstraint(Constraint{Quantity: "envx", Element: "q1", Category: "quadrupole", Value: 2.5})

	// Assert
	cs := s.Constraints()
	require.Len(t, cs, 1)
	assert.Equal(t, 2.5, cs[0].Value)
}

func TestSession_SeparateElementsAccumulate(t *testing.T) {
	s := NewSession(NewTable(testRules()))

	s.AddConstraint(Constraint{Quantity: "envx", Element: "q1", Category: "quadrupole", Value: 1})
	s.AddConstraint(Constraint{Quantity: "envy", Element: "q1", Category: "quadrupole", Value: 2})
	s.AddConstraint(Constraint{Quantity: "envx", Element: "q2", Category: "quadrupole", Value: 3})

	assert.Len(t, s.Constraints(), 3)
}

func TestSession_RemoveConstraint(t *testing.T) {
	s := NewSession(NewTable(testRules()))
	s.AddConstraint(Constraint{Quantity: "envx", Element: "q1", Category: "quadrupole", Value: 1})

	assert.True(t, s.RemoveConstraint("envx", "q1"))
	assert.False(t, s.RemoveConstraint("envx", "q1"))
	assert.Empty(t, s.Constraints())
}

func TestSession_Clear(t *testing.T) {
	s := NewSession(NewTable(testRules()))
	s.AddConstraint(Constraint{Quantity: "x", Element: "b1", Category: "sbend", Value: 1})
	s.AddConstraint(Constraint{Quantity: "y", Element: "b1", Category: "sbend", Value: 1})

	s.Clear()

	assert.Empty(t, s.Constraints())
}

func TestSession_Variables_UnionOfEligibleKnobs(t *testing.T) {
	// Arrange
	s := NewSession(NewTable(testRules()))
	s.AddConstraint(Constraint{Quantity: "x", Element: "q1", Category: "quadrupole", Value: 1})
	s.AddConstraint(Constraint{Quantity: "x", Element: "k1", Category: "kicker", Value: 2})
	s.AddConstraint(Constraint{Quantity: "y", Element: "k2", Category: "kicker", Value: 3})

	// Act
	vars := s.Variables()

	// Assert: sorted union over all constraints.
	assert.Equal(t, []string{"hkick", "k1", "vkick"}, vars)
}

func TestSession_Variables_IgnoresIneligibleCategories(t *testing.T) {
	s := NewSession(NewTable(testRules()))
	// envx has no rule for sbend, so this constraint contributes no knobs.
	s.AddConstraint(Constraint{Quantity: "envx", Element: "b1", Category: "sbend", Value: 1})

	assert.Empty(t, s.Variables())
}
