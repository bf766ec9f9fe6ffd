package employee

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/assettrack/backend/internal/domain/shared"
)

// Company is an employing organisation with its own ID sequence
type Company string

const (
	CompanyVAccel          Company = "V-Accel"
	CompanyAxessTechnology Company = "Axess Technology"
)

var companyPrefixes = map[Company]string{
	CompanyVAccel:          "VA",
	CompanyAxessTechnology: "AT",
}

// IsValid reports whether c is a known company
func (c Company) IsValid() bool {
	_, ok := companyPrefixes[c]
	return ok
}

// Prefix returns the employee ID prefix for the company
func (c Company) Prefix() (string, error) {
	p, ok := companyPrefixes[c]
	if !ok {
		return "", ErrInvalidCompany
	}
	return p, nil
}

// Sequence names and floors for employee IDs
const (
	LegacySequenceName = "employee"
	CompanyIDFloor     = 999
)

var (
	legacyIDPattern  = regexp.MustCompile(`^EMP-(\d{3,})$`)
	companyIDPattern = regexp.MustCompile(`^(VA|AT)(\d+)$`)
)

// CompanySequenceName returns the counter key for a company prefix
func CompanySequenceName(prefix string) string {
	return LegacySequenceName + ":" + prefix
}

// NormalizeEmployeeID trims and uppercases a caller-supplied employee ID
func NormalizeEmployeeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// ValidateEmployeeID accepts EMP-001 or a company-scoped VA1000/AT1000
func ValidateEmployeeID(id string) error {
	if legacyIDPattern.MatchString(id) || companyIDPattern.MatchString(id) {
		return nil
	}
	return shared.NewFieldError("employeeId", "Employee ID must match format EMP-001 or VA1000/AT1000")
}

// FormatLegacyEmployeeID renders a sequence value as EMP-001
func FormatLegacyEmployeeID(seq int64) string {
	return fmt.Sprintf("EMP-%03d", seq)
}

// FormatCompanyEmployeeID renders a sequence value as VA1000
func FormatCompanyEmployeeID(prefix string, seq int64) string {
	return prefix + strconv.FormatInt(seq, 10)
}

// SequenceOf maps a valid employee ID to its counter key and numeric value
func SequenceOf(id string) (name string, value int64, ok bool) {
	if m := legacyIDPattern.FindStringSubmatch(id); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		return LegacySequenceName, n, err == nil
	}
	if m := companyIDPattern.FindStringSubmatch(id); m != nil {
		n, err := strconv.ParseInt(m[2], 10, 64)
		return CompanySequenceName(m[1]), n, err == nil
	}
	return "", 0, false
}
