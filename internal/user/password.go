package user

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// Password policy violations. Each tag doubles as a validator tag.
const (
	PwdMinLenTag     = "pwdminlen"
	PwdNoSpaceTag    = "pwdnospace"
	PwdNotAllNumTag  = "pwdnotallnum"
	PwdComplexityTag = "pwdcplx"
	PwdAttrSimTag    = "pwdtoosim"

	pwdMinLen = 8
	pwdMaxSim = .7
)

// PasswordPolicyTexts holds the English message per violation tag.
var PasswordPolicyTexts = map[string]string{
	PwdMinLenTag:     fmt.Sprintf("password must contain at least %d characters", pwdMinLen),
	PwdNoSpaceTag:    "password must not contain whitespace",
	PwdNotAllNumTag:  "password cannot be entirely numeric",
	PwdComplexityTag: "password must contain at least 1 uppercase character, 1 lowercase character, 1 digit and 1 special character",
	PwdAttrSimTag:    "password cannot be similar to your username or email",
}

var specialRegex = regexp.MustCompile("[^A-Za-z0-9]")

// CheckPassword applies the password policy and returns the tag of the
// first violated rule, or "" when pwd is acceptable. attrs are user
// attributes (username, email) the password must not resemble.
func CheckPassword(pwd string, attrs ...string) string {
	if len(pwd) < pwdMinLen {
		return PwdMinLenTag
	}

	var digits int
	var hasUpper, hasLower bool
	for _, r := range pwd {
		if unicode.IsSpace(r) {
			return PwdNoSpaceTag
		}
		if unicode.IsDigit(r) {
			digits++
		}
		hasUpper = hasUpper || unicode.IsUpper(r)
		hasLower = hasLower || unicode.IsLower(r)
	}

	if digits == len([]rune(pwd)) {
		return PwdNotAllNumTag
	}
	if !(hasUpper && hasLower && digits > 0 && specialRegex.MatchString(pwd)) {
		return PwdComplexityTag
	}

	lower := strings.ToLower(pwd)
	for _, attr := range attrs {
		if attr == "" {
			continue
		}
		ratio := difflib.NewMatcher(strings.Split(lower, ""), strings.Split(strings.ToLower(attr), "")).QuickRatio()
		if ratio >= pwdMaxSim {
			return PwdAttrSimTag
		}
	}
	return ""
}
