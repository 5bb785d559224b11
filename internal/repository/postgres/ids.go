package postgres

import "github.com/google/uuid"

// isUUID reports whether s can be compared against a UUID column. Postgres rejects
// malformed literals with an error, whereas callers expect "no such row".
func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func onlyUUIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if isUUID(id) {
			out = append(out, id)
		}
	}
	return out
}
