// Package transfer moves workout logs in and out: CSV export, JSON backup
// and bulk JSON import.
package transfer

import (
	"strconv"
	"strings"

	"github.com/2beens/warmachine/internal/gymstats/workouts"
)

const csvHeader = "Date,Exercise,Category,Weight,Reps"

// quote always wraps the value in double quotes, doubling embedded ones.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// EncodeCSV renders the entries in the given order, one row per entry.
// Exercise and category are always quoted.
func EncodeCSV(entries []workouts.Entry) []byte {
	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteByte('\n')
	for _, e := range entries {
		sb.WriteString(e.Date)
		sb.WriteByte(',')
		sb.WriteString(quote(e.Exercise))
		sb.WriteByte(',')
		sb.WriteString(quote(e.Category))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(e.Weight, 'f', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(e.Reps))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
