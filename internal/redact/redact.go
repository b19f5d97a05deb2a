// Package redact strips credentials, hosts, file paths and SQL text from
// strings before they are logged. Error details from the database driver
// routinely carry all of these.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; earlier rules may consume text later ones
// would otherwise match.
var rules = []rule{
	// userinfo section of a connection URL
	{
		regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|pgx)://[^@\s]+@`),
		RedactedCredentialPlaceholder,
	},
	// key=value passwords in DSNs and driver messages
	{
		regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[=:]\s*(?:'[^']*'|"[^"]*"|[^\s&'"]+)`),
		RedactedCredentialPlaceholder,
	},
	// SQL emitted by the query builders is uppercase; everything after the
	// statement keyword is dropped.
	{
		regexp.MustCompile(`\b(?:SELECT\s|INSERT\s+INTO\s|UPDATE\s+\w+\s+SET\s|DELETE\s+FROM\s|WITH\s+\w+\s+AS\s*\()[\s\S]*`),
		RedactedSQLPlaceholder,
	},
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		RedactedStackPlaceholder,
	},
	{
		regexp.MustCompile(`\b(?:localhost|\d{1,3}(?:\.\d{1,3}){3}|(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}):\d{1,5}\b`),
		RedactedHostPlaceholder,
	},
	{
		regexp.MustCompile(`(?:/[\w.-]+){2,}`),
		RedactedPathPlaceholder,
	},
}

// String redacts sensitive fragments of input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
