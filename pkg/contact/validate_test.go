package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlieallen/portfolio/pkg/contact"
)

func valid() contact.Submission {
	return contact.Submission{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "Hello there, this is a test message.",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*contact.Submission)
		summary string
		field   string
	}{
		{
			name:    "missing name",
			mutate:  func(s *contact.Submission) { s.Name = "" },
			summary: "Missing required fields",
			field:   contact.FieldName,
		},
		{
			name:    "missing email",
			mutate:  func(s *contact.Submission) { s.Email = "" },
			summary: "Missing required fields",
			field:   contact.FieldEmail,
		},
		{
			name:    "missing message",
			mutate:  func(s *contact.Submission) { s.Message = "" },
			summary: "Missing required fields",
			field:   contact.FieldMessage,
		},
		{
			name:    "name too long",
			mutate:  func(s *contact.Submission) { s.Name = strings.Repeat("a", 101) },
			summary: "Name is too long (max 100 characters)",
			field:   contact.FieldName,
		},
		{
			name:    "message too long",
			mutate:  func(s *contact.Submission) { s.Message = strings.Repeat("a", 5001) },
			summary: "Message is too long (max 5000 characters)",
			field:   contact.FieldMessage,
		},
		{
			name:    "message too long wins over bad email",
			mutate: func(s *contact.Submission) {
				s.Message = strings.Repeat("a", 5001)
				s.Email = "nope"
			},
			summary: "Message is too long (max 5000 characters)",
			field:   contact.FieldMessage,
		},
		{
			name:    "surrounding whitespace counts toward message limit",
			mutate:  func(s *contact.Submission) { s.Message = "\n" + strings.Repeat("b", 5000) },
			summary: "Message is too long (max 5000 characters)",
			field:   contact.FieldMessage,
		},
		{
			name:    "trailing spaces count toward message limit",
			mutate:  func(s *contact.Submission) { s.Message = strings.Repeat("a", 4990) + strings.Repeat(" ", 11) },
			summary: "Message is too long (max 5000 characters)",
			field:   contact.FieldMessage,
		},
		{
			name:    "surrounding whitespace counts toward name limit",
			mutate:  func(s *contact.Submission) { s.Name = " " + strings.Repeat("n", 100) },
			summary: "Name is too long (max 100 characters)",
			field:   contact.FieldName,
		},
		{
			name:    "email without tld",
			mutate:  func(s *contact.Submission) { s.Email = "jo@example" },
			summary: "Invalid email address",
			field:   contact.FieldEmail,
		},
		{
			name:    "email with whitespace",
			mutate:  func(s *contact.Submission) { s.Email = "jo smith@example.com" },
			summary: "Invalid email address",
			field:   contact.FieldEmail,
		},
		{
			name:    "email with two at signs",
			mutate:  func(s *contact.Submission) { s.Email = "jo@@example.com" },
			summary: "Invalid email address",
			field:   contact.FieldEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := valid()
			tt.mutate(&s)

			err := contact.Validate(s, contact.RelayRules())
			require.ErrorIs(t, err, contact.ErrValidation)

			ve, ok := contact.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.summary, ve.Error())
			assert.NotEmpty(t, ve.Field(tt.field))
		})
	}

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, contact.Validate(valid(), contact.RelayRules()))
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		t.Parallel()

		s := valid()
		s.Name = strings.Repeat("n", 100)
		s.Message = strings.Repeat("m", 5000)
		assert.NoError(t, contact.Validate(s, contact.RelayRules()))
	})

	t.Run("lengths count characters not bytes", func(t *testing.T) {
		t.Parallel()

		s := valid()
		s.Name = strings.Repeat("é", 100)
		assert.NoError(t, contact.Validate(s, contact.RelayRules()))
	})

	t.Run("all missing fields are listed", func(t *testing.T) {
		t.Parallel()

		err := contact.Validate(contact.Submission{}, contact.RelayRules())
		ve, ok := contact.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, map[string]string{
			"name":    "Name is required",
			"email":   "Email is required",
			"message": "Message is required",
		}, ve.Map())
	})

	t.Run("minimum length when configured", func(t *testing.T) {
		t.Parallel()

		s := valid()
		s.Message = "too short"
		err := contact.Validate(s, contact.FormRules())
		require.Error(t, err)
		assert.Equal(t, "Message must be at least 10 characters long", err.Error())

		assert.NoError(t, contact.Validate(s, contact.RelayRules()))
	})
}

func TestValidateForm(t *testing.T) {
	t.Parallel()

	t.Run("reports every field", func(t *testing.T) {
		t.Parallel()

		err := contact.ValidateForm(contact.Submission{Email: "bad"}, contact.FormRules())
		ve, ok := contact.AsValidationError(err)
		require.True(t, ok)

		assert.Equal(t, map[string]string{
			"name":    "Name is required",
			"email":   "Please enter a valid email address",
			"message": "Message is required",
		}, ve.Map())
	})

	t.Run("short message", func(t *testing.T) {
		t.Parallel()

		s := valid()
		s.Message = "Hi there"
		err := contact.ValidateForm(s, contact.FormRules())
		ve, ok := contact.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Message must be at least 10 characters long", ve.Field(contact.FieldMessage))
		assert.Empty(t, ve.Field(contact.FieldName))
	})

	t.Run("padded message over the limit", func(t *testing.T) {
		t.Parallel()

		s := valid()
		s.Message = strings.Repeat("m", 5000) + "\n"
		err := contact.ValidateForm(s, contact.FormRules())
		ve, ok := contact.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Message is too long (max 5000 characters)", ve.Field(contact.FieldMessage))
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, contact.ValidateForm(valid(), contact.FormRules()))
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got := contact.Normalize(contact.Submission{
		Name:    "  José ",
		Email:   " jo@example.com\n",
		Message: "\n Line one\nLine two \n",
	})

	assert.Equal(t, "José", got.Name)
	assert.Equal(t, "jo@example.com", got.Email)
	assert.Equal(t, "Line one\nLine two", got.Message)
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"jo@example.com", "a.b+c@sub.example.co.uk", "x@y.z"} {
		assert.True(t, contact.ValidEmail(ok), ok)
	}
	for _, bad := range []string{"", "jo", "jo@", "@example.com", "jo@example", "jo@exa mple.com"} {
		assert.False(t, contact.ValidEmail(bad), bad)
	}
}
