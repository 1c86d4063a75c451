package app

import (
	"strconv"
	"strings"

	"github.com/example/stockroom/internal/fault"
)

// parseID converts a user-entered id field to its numeric form. An empty
// field and a non-numeric field are both validation faults, distinguished
// only by message.
func parseID(idText string) (int64, error) {
	if idText == "" {
		return 0, fault.Validationf("Please fill in the id field.")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return 0, fault.Validationf("Please enter a valid id.")
	}
	return id, nil
}
