package respond

import (
	"regexp"
)

var (
	// anthropicKeyPattern must run before openaiKeyPattern.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// queryKeyPattern covers credentials sent as URL query parameters
	// (apikey for NewsData, token for GNews and Finnhub).
	queryKeyPattern = regexp.MustCompile(`(?i)\b(apikey|api_key|token|key)=[^&\s"']+`)

	bearerPattern     = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/=-]+`)
	dbPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}

// SanitizeString masks API keys, bearer tokens, credential query parameters
// and DSN passwords in msg.
func SanitizeString(msg string) string {
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = queryKeyPattern.ReplaceAllString(msg, "$1=****")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}
