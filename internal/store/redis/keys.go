package redis

const (
	// KeyPrefixEntry is the prefix for entry keys
	KeyPrefixEntry = "shelf:entry:"
	// KeyAllEntries is the key for the set of all entry IDs
	KeyAllEntries = "shelf:entries:all"
	// KeyDocument is the key holding the canonical rendered document
	KeyDocument = "shelf:document"
)

// EntryKey returns the Redis key for an entry
func EntryKey(id string) string {
	return KeyPrefixEntry + id
}

// AllEntriesKey returns the Redis key for the set of all entries
func AllEntriesKey() string {
	return KeyAllEntries
}

// DocumentKey returns the Redis key for the canonical document text
func DocumentKey() string {
	return KeyDocument
}
