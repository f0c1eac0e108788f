package helper

import (
	"net/url"
	"strings"
)

// StringYellow func
func StringYellow(str string) string {
	return "\x1b[33;2m" + str + "\x1b[0m"
}

// StringGreen func
func StringGreen(str string) string {
	return "\x1b[32;2m" + str + "\x1b[0m"
}

// StringInSlice func
func StringInSlice(str string, list []string) bool {
	for _, s := range list {
		if str == s {
			return true
		}
	}
	return false
}

// MaskingPasswordURL for hide plain text password from given URL format
func MaskingPasswordURL(stringURL string) string {
	u, err := url.Parse(stringURL)
	if err != nil {
		return stringURL
	}
	pass, ok := u.User.Password()
	if pass == "" || !ok {
		return stringURL
	}

	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}

// SplitTrim split string by separator and trim every element, empty element is skipped
func SplitTrim(str, sep string) (res []string) {
	for _, s := range strings.Split(str, sep) {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return
}
