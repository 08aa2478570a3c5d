package authclient

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// specialtyPlaceholder is the unselected option in the registration form.
const specialtyPlaceholder = "Select Specialty"

// Specialties lists the selectable doctor specialties, placeholder first.
var Specialties = []string{
	specialtyPlaceholder,
	"Dermatologist", "Cardiologist", "Neurologist", "Orthopedic Surgeon",
	"Pediatrician", "Gynecologist", "Psychiatrist", "Radiologist",
	"General Physician", "Emergency Medicine", "Anesthesiologist",
	"Ophthalmologist", "ENT Specialist", "Urologist", "Gastroenterologist",
	"Endocrinologist", "Rheumatologist", "Oncologist", "Pulmonologist",
	"Nephrologist", "Hematologist", "Allergist", "Infectious Disease",
	"Plastic Surgeon",
}

// DoctorForm is the doctor registration draft. It is owned by the caller
// and submitted whole; validation happens entirely before any network call.
type DoctorForm struct {
	Username        string
	Password        string
	ConfirmPassword string
	Email           string
	FullName        string
	Specialty       string
	LicenseNumber   string
	Hospital        string
	Phone           string
	Address         string
	YearsExperience string
}

// PatientForm is the mobile patient registration draft.
type PatientForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate applies the client-side registration rules and returns one
// message per failing field.
func (f DoctorForm) Validate() FieldErrors {
	errs := FieldErrors{}

	validateUsername(f.Username, errs)
	validateEmail(f.Email, errs)
	validatePassword(f.Password, f.ConfirmPassword, errs)

	if strings.TrimSpace(f.FullName) == "" {
		errs["full_name"] = "Full name is required"
	}
	if f.Specialty == "" || f.Specialty == specialtyPlaceholder {
		errs["specialty"] = "Please select a specialty"
	}
	if strings.TrimSpace(f.LicenseNumber) == "" {
		errs["license_number"] = "Medical license number is required"
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	return errs
}

func (f PatientForm) Validate() FieldErrors {
	errs := FieldErrors{}
	validateUsername(f.Username, errs)
	validateEmail(f.Email, errs)
	validatePassword(f.Password, f.ConfirmPassword, errs)
	return errs
}

func validateUsername(username string, errs FieldErrors) {
	if strings.TrimSpace(username) == "" {
		errs["username"] = "Username is required"
	} else if len(username) < 3 {
		errs["username"] = "Username must be at least 3 characters"
	}
}

func validateEmail(email string, errs FieldErrors) {
	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}
}

// validatePassword enforces the portal's complexity rules: at least eight
// characters, one uppercase letter, one digit, and a matching confirmation.
func validatePassword(password, confirm string, errs FieldErrors) {
	switch {
	case password == "":
		errs["password"] = "Password is required"
	case len(password) < 8:
		errs["password"] = "Password must be at least 8 characters"
	case !containsFunc(password, unicode.IsUpper):
		errs["password"] = "Password must contain at least one uppercase letter"
	case !containsFunc(password, unicode.IsDigit):
		errs["password"] = "Password must contain at least one number"
	}
	if password != confirm {
		errs["confirm_password"] = "Passwords do not match"
	}
}

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}
	return false
}

func (f DoctorForm) payload() map[string]string {
	return map[string]string{
		"username":         f.Username,
		"password":         f.Password,
		"email":            f.Email,
		"full_name":        f.FullName,
		"specialty":        f.Specialty,
		"license_number":   f.LicenseNumber,
		"hospital":         f.Hospital,
		"phone":            f.Phone,
		"address":          f.Address,
		"years_experience": f.YearsExperience,
	}
}
