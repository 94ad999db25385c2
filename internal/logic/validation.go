package logic

import (
	"net/url"
	"regexp"
	"strings"
)

// emailRegexp 与前端表单一致的邮箱校验：用户名@域名.至少两位TLD
var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// maxEmailLength RFC上限
const maxEmailLength = 254

// IsValidEmail 校验邮箱格式及长度
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > maxEmailLength {
		return false
	}
	return emailRegexp.MatchString(email)
}

// IsValidURL 校验链接为带scheme和host的绝对URL
func IsValidURL(link string) bool {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
