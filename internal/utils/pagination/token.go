package pagination

import (
	"encoding/base64"
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
)

const tokenVersion = "v1"

// EncodeToken creates an opaque token from any number of string fields.
func EncodeToken(fields ...string) string {
	tokenStr := strings.Join(append([]string{tokenVersion}, fields...), "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token made by EncodeToken, expecting exactly want fields.
func DecodeToken(token string, want int) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.Split(string(decodedBytes), "|")
	if len(parts) != want+1 || parts[0] != tokenVersion {
		return nil, fmt.Errorf("invalid pagination token format (fields)")
	}
	return parts[1:], nil
}

// PageLogs returns up to limit logs following the position encoded in token,
// and the token for the next page ("" when no logs remain). An empty token
// starts from the beginning; a limit of zero or less returns the rest.
// Positions are anchored on log ids, which never move or get reused.
func PageLogs(logs []domain.Log, token string, limit int) ([]domain.Log, string, error) {
	start := 0
	if token != "" {
		fields, err := DecodeToken(token, 1)
		if err != nil {
			return nil, "", err
		}
		after := slices.IndexFunc(logs, func(l domain.Log) bool { return l.ID() == fields[0] })
		if after < 0 {
			return nil, "", fmt.Errorf("invalid pagination token: unknown position")
		}
		start = after + 1
	}

	rest := logs[start:]
	if limit <= 0 || limit >= len(rest) {
		return slices.Clone(rest), "", nil
	}
	page := slices.Clone(rest[:limit])
	return page, EncodeToken(page[len(page)-1].ID()), nil
}
