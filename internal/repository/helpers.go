package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isConstraintError checks if an error is a failed field ASSERT or type check
func isConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "must conform to") ||
		strings.Contains(errStr, "Couldn't coerce") ||
		strings.Contains(errStr, "expected a string")
}

// convertSurrealID renders a SurrealDB record id as "table:key"
func convertSurrealID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		// Handle {"tb": "person", "id": "xxx"} format
		tb, _ := v["tb"].(string)
		if tb == "" {
			tb, _ = v["Table"].(string)
		}
		idPart := v["id"]
		if idPart == nil {
			idPart = v["ID"]
		}
		if tb != "" && idPart != nil {
			return fmt.Sprintf("%s:%v", tb, idPart)
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil && recordID.Table != "" {
			return fmt.Sprintf("%s:%v", recordID.Table, recordID.ID)
		}
	}

	return fmt.Sprintf("%v", id)
}

// recordKey strips the table prefix and any ⟨⟩ escaping from a record id
func recordKey(id interface{}) string {
	s := convertSurrealID(id)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}
	return strings.Trim(s, "⟨⟩`")
}

// extractQueryResults returns the records of the first statement in a
// SurrealDB response
func extractQueryResults(results []interface{}) []interface{} {
	if len(results) == 0 {
		return nil
	}
	if resp, ok := results[0].(map[string]interface{}); ok {
		if resultArray, ok := resp["result"].([]interface{}); ok {
			return resultArray
		}
		if _, hasStatus := resp["status"]; hasStatus {
			return nil
		}
	}
	// Direct array format
	return results
}

// extractCount extracts count from SurrealDB count query result
func extractCount(result interface{}) int {
	if resp, ok := result.(map[string]interface{}); ok {
		if resultData, ok := resp["result"].([]interface{}); ok && len(resultData) > 0 {
			if data, ok := resultData[0].(map[string]interface{}); ok {
				return extractCountValue(data["count"])
			}
		}
		// Direct access
		return extractCountValue(resp["count"])
	}
	return extractCountValue(result)
}

// extractCountValue converts various numeric types to int
func extractCountValue(v interface{}) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	}
	return 0
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getTime extracts a time value from a map, zero when absent
func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	case models.CustomDateTime:
		return v.Time
	case *models.CustomDateTime:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}
