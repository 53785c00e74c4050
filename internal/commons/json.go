package commons

import (
	"encoding/json"
	"fmt"
	"io"
)

func WriteJSON(w io.Writer, payload interface{}) error {
	dat, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling JSON: %w", err)
	}
	dat = append(dat, '\n')
	if _, err := w.Write(dat); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
