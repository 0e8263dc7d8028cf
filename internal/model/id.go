package model

import (
	"regexp"
	"strings"
)

// PersonTable is the backend table that holds phonebook entries
const PersonTable = "person"

var personKeyPattern = regexp.MustCompile(`^[0-9A-Za-z]{1,64}$`)

// ParsePersonID returns the record key of id, accepting both the bare key and
// the table-qualified "person:<key>" form. ok is false for anything the
// backend could not have generated.
func ParsePersonID(id string) (key string, ok bool) {
	key = strings.TrimPrefix(id, PersonTable+":")
	if !personKeyPattern.MatchString(key) {
		return "", false
	}
	return key, true
}

// PersonRecordID returns the table-qualified record id for a key
func PersonRecordID(key string) string {
	return PersonTable + ":" + key
}
