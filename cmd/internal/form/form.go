package form

import (
	"unicode/utf8"

	"pwgate/cmd/security/password"
)

// Submission is the outcome of Submit. Accepted is true only when both fields pass.
type Submission struct {
	Accepted        bool
	NewPassword     Result
	ConfirmPassword Result
}

type field struct {
	text     string
	err      string
	validate ValidationFunc
}

// Form is the password-entry form state.
// It is not safe for concurrent use.
type Form struct {
	policy password.Policy

	fields  [fieldCount]field
	focused FieldID

	// strict flips to true on the first blur of a non-empty new password and never reverts.
	strict  bool
	display password.Display

	observers      []observer
	nextObserverID int
}

// Option configures a Form at construction.
type Option func(*Form)

// WithValidation replaces the validation strategy of one field.
func WithValidation(id FieldID, fn ValidationFunc) Option {
	return func(f *Form) {
		if f == nil || fn == nil || !id.Valid() {
			return
		}
		f.fields[id].validate = fn
	}
}

// New constructs a Form using policy for the new-password field.
func New(policy password.Policy, opts ...Option) *Form {
	f := &Form{policy: policy}
	f.fields[NewPassword].validate = NewPasswordValidation(policy)
	f.fields[ConfirmPassword].validate = ConfirmPasswordValidation(func() string {
		return f.fields[NewPassword].text
	})

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Policy returns the policy the form evaluates against.
func (f *Form) Policy() password.Policy { return f.policy }

// Strict reports whether unmet criteria are rendered as failures.
func (f *Form) Strict() bool { return f.strict }

// Focused returns the focused field, or NoField.
func (f *Form) Focused() FieldID { return f.focused }

// Error returns the current error message of a field ("" when none).
func (f *Form) Error(id FieldID) string {
	if !id.Valid() {
		return ""
	}
	return f.fields[id].err
}

// Edit applies a text change to a field.
//
// For the new-password field the charset gate runs first: on failure every
// criterion is reset and MsgInvalidChars is reported without evaluating
// criteria. Otherwise the criteria display is updated under the current strict flag.
func (f *Form) Edit(id FieldID, text string) error {
	if !id.Valid() {
		return ErrUnknownField
	}

	fl := &f.fields[id]
	fl.text = text
	fl.err = ""

	if id == NewPassword {
		if !f.policy.CharsetValid(text) {
			f.display.Reset()
			fl.err = MsgInvalidChars
		} else {
			f.display.Apply(f.policy.Evaluate(text), f.strict)
		}
	}

	f.emit(EventEdited, id)
	return nil
}

// Focus moves focus to a field. The previously focused field, if any, is blurred first.
func (f *Form) Focus(id FieldID) error {
	if !id.Valid() {
		return ErrUnknownField
	}
	if f.focused == id {
		return nil
	}
	if f.focused != NoField {
		f.blur(f.focused)
	}
	f.focused = id
	f.emit(EventFocused, id)
	return nil
}

// Blur ends editing of a field and validates it.
func (f *Form) Blur(id FieldID) (Result, error) {
	if !id.Valid() {
		return Result{}, ErrUnknownField
	}
	return f.blur(id), nil
}

func (f *Form) blur(id FieldID) Result {
	if f.focused == id {
		f.focused = NoField
	}
	if id == NewPassword && f.fields[id].text != "" {
		f.strict = true
	}

	res := f.validateField(id)
	f.emit(EventBlurred, id)
	return res
}

// Submit ends editing and validates both fields independently.
func (f *Form) Submit() Submission {
	if f.focused != NoField {
		f.blur(f.focused)
	}

	sub := Submission{
		NewPassword:     f.validateField(NewPassword),
		ConfirmPassword: f.validateField(ConfirmPassword),
	}
	sub.Accepted = sub.NewPassword.Accepted && sub.ConfirmPassword.Accepted

	f.emit(EventSubmitted, NoField)
	return sub
}

// Reset clears both fields, their errors and the criteria display.
// The strict flag is kept.
func (f *Form) Reset() {
	for id := range f.fields {
		f.fields[id].text = ""
		f.fields[id].err = ""
	}
	f.focused = NoField
	f.display.Reset()
	f.emit(EventReset, NoField)
}

// Snapshot returns the current render model.
func (f *Form) Snapshot() Snapshot {
	return Snapshot{
		Strict:  f.strict,
		Focused: f.focused,
		NewPassword: FieldSnapshot{
			Length: utf8.RuneCountInString(f.fields[NewPassword].text),
			Error:  f.fields[NewPassword].err,
		},
		ConfirmPassword: FieldSnapshot{
			Length: utf8.RuneCountInString(f.fields[ConfirmPassword].text),
			Error:  f.fields[ConfirmPassword].err,
		},
		Criteria: f.display.Snapshot(),
	}
}

func (f *Form) validateField(id FieldID) Result {
	fl := &f.fields[id]
	res := fl.validate(fl.text)
	fl.err = res.Reason

	if id == NewPassword && f.policy.CharsetValid(fl.text) {
		f.display.Apply(f.policy.Evaluate(fl.text), f.strict)
	}
	return res
}
