// Package export renders a form's contents for download or display.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tridenda/talentlytica/internal/grading"
)

// WriteJSON writes the snapshot indented by two spaces, keys in roster order.
func WriteJSON(w io.Writer, snap *grading.ExportSnapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
