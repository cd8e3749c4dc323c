package order

import (
	"regexp"
	"strconv"
	"strings"
)

// Field patterns for submission validation. Alphabetic fields allow spaces,
// alphanumeric fields allow letters, digits, and spaces. The email pattern
// is a deliberately permissive syntactic check, not full RFC validation.
var (
	alphabeticPattern   = regexp.MustCompile(`^[A-Za-z\s]+$`)
	alphanumericPattern = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	phonePattern        = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Submission holds the raw order form fields as submitted, before any
// validation or parsing.
type Submission struct {
	Name       string
	Address    string
	City       string
	Province   string
	PostalCode string
	Phone      string
	Email      string
	// Quantities are the raw quantity inputs for each product.
	Quantities [NumProducts]string
	// DeliveryTier selects the shipping speed ("7", "5", or "2" days).
	DeliveryTier string
}

// ValidationError reports every field rule violated by a submission.
// Messages appear in field declaration order so the caller can render
// them next to the form as-is.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + strings.Join(e.Messages, "; ")
}

// Validate checks every field of the submission against its rule and
// returns the parsed product quantities. All rules are evaluated, not
// short-circuited, so a single response carries every violation. The
// quantity group is the one exception: the first bad quantity raises one
// combined message for the group.
func (s Submission) Validate() ([NumProducts]int, *ValidationError) {
	var msgs []string

	if !matchesTrimmed(s.Name, alphabeticPattern) {
		msgs = append(msgs, "Name is required and should contain only alphabets.")
	}
	if !matchesTrimmed(s.Address, alphanumericPattern) {
		msgs = append(msgs, "Address is required and should contain only alphabets and numbers.")
	}
	if !matchesTrimmed(s.City, alphabeticPattern) {
		msgs = append(msgs, "City is required and should contain only alphabets.")
	}
	if !matchesTrimmed(s.Province, alphabeticPattern) {
		msgs = append(msgs, "Province is required and should contain only alphabets.")
	}
	if !matchesTrimmed(s.PostalCode, alphanumericPattern) {
		msgs = append(msgs, "Postal Code is required and should contain only alphabets and numbers.")
	}

	if strings.TrimSpace(s.Phone) == "" {
		msgs = append(msgs, "Phone number is required.")
	} else if !phonePattern.MatchString(strings.TrimSpace(s.Phone)) {
		msgs = append(msgs, "Phone number must be 10 digits.")
	}

	if strings.TrimSpace(s.Email) == "" {
		msgs = append(msgs, "Email is required.")
	} else if !emailPattern.MatchString(strings.TrimSpace(s.Email)) {
		msgs = append(msgs, "Invalid email format. Please enter a valid email address.")
	}

	var quantities [NumProducts]int
	for i, raw := range s.Quantities {
		q, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || q < 0 {
			msgs = append(msgs, "Invalid quantity for products.")
			break
		}
		quantities[i] = q
	}

	if len(msgs) > 0 {
		return [NumProducts]int{}, &ValidationError{Messages: msgs}
	}
	return quantities, nil
}

// matchesTrimmed reports whether the field is non-empty after trimming and
// its trimmed value matches the pattern.
func matchesTrimmed(field string, pattern *regexp.Regexp) bool {
	trimmed := strings.TrimSpace(field)
	return trimmed != "" && pattern.MatchString(trimmed)
}
