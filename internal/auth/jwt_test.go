package auth

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestTokenRoundTrip(t *testing.T) {
	c := qt.New(t)
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(7)
	c.Assert(err, qt.IsNil)

	userID, err := ValidateToken(token)
	c.Assert(err, qt.IsNil)
	c.Assert(userID, qt.Equals, int64(7))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	c := qt.New(t)
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not-a-token")
	c.Assert(err, qt.IsNotNil)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	c := qt.New(t)
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(7)
	c.Assert(err, qt.IsNil)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateToken(token)
	c.Assert(err, qt.IsNotNil)
}
