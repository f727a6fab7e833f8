package domain

import (
	"regexp"
	"strings"
)

// MinPasswordLength is the enforced minimum for new CA passwords.
const MinPasswordLength = 5

// looseEmail accepts anything shaped like text@text, matching what the
// backend itself tolerates. Stricter checks would reject addresses the
// backend accepts.
var looseEmail = regexp.MustCompile(`^\S+@\S+$`)

// FieldErrors maps a form field name to its validation message. An empty map
// means the draft is valid.
type FieldErrors map[string]string

// Valid reports whether no field failed.
func (fe FieldErrors) Valid() bool { return len(fe) == 0 }

// CADraft is the transient form state for a create or edit modal. It exists
// only between opening the form and submit-success or cancel.
type CADraft struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate applies the CA form rules. In edit mode the password is optional
// (blank means keep the current one); when supplied it must still meet the
// minimum length. The confirmation must match whenever a password was typed.
func (d CADraft) Validate(editing bool) FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(d.Name)) < 2 {
		errs["name"] = "Name must have at least 2 letters"
	}
	if !looseEmail.MatchString(d.Email) {
		errs["email"] = "Invalid email"
	}

	if editing {
		if d.Password != "" && len(d.Password) < MinPasswordLength {
			errs["password"] = "Password must be at least 5 characters"
		}
	} else if len(d.Password) < MinPasswordLength {
		errs["password"] = "Password must be at least 5 characters"
	}

	if d.Password != "" && d.ConfirmPassword != d.Password {
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}

// CreateInput builds the create payload from a valid draft. The confirmation
// field never leaves the console.
func (d CADraft) CreateInput() CreateCAInput {
	return CreateCAInput{Name: d.Name, Email: d.Email, Password: d.Password}
}

// UpdateInput builds the edit payload from a valid draft. A blank password
// stays blank and is dropped from the wire payload by omitempty.
func (d CADraft) UpdateInput() UpdateCAInput {
	return UpdateCAInput{Name: d.Name, Email: d.Email, Password: d.Password}
}
