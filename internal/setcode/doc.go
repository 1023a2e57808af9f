// Package setcode carries a catalog of Magic set codes and names so rows can
// resolve full set names to codes offline and recover from near-miss codes
// before any network lookup happens.
package setcode
