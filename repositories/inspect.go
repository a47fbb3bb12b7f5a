package repositories

import (
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// InspectMapper renders the rows of the debug inspector, whatever store they belong to.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	switch {
	case strings.HasPrefix(key, "msg:"):
		m, err := unmarshalMessage(val)
		if err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "MESSAGE"
		row.Namespace = m.Room
		row.EntityID = fmt.Sprintf("%d", m.Seq)
		row.Timestamp = m.Timestamp()
		row.Detail = m.Render()
	case strings.HasPrefix(key, userPrefix):
		u, err := unmarshalUser(val)
		if err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "USER"
		row.EntityID = u.Username
		row.Namespace = u.CurrentRoom
	case strings.HasPrefix(key, entryPrefix):
		e, err := unmarshalEntry(val)
		if err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "PROCEDURE"
		row.EntityID = e.Procedure
		row.Detail = e.Target()
	}
	return row
}
