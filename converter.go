package riptide

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// jsonConverter implements MessageConverter over encoding/json, with a
// gjson pre-check so a non-JSON or malformed body produces a clear error
// instead of whatever message json.Unmarshal happens to generate -- the
// same "cheap check before the expensive parse" shape as the teacher's
// Discriminator running before a source's full Parse.
type jsonConverter struct{}

// JSONConverter returns a MessageConverter that decodes response bodies as
// JSON via encoding/json. Rest does not pick it automatically; pass it to
// MapRoute/ConsumeRoute (or Map/Consume) wherever JSON decoding is wanted.
func JSONConverter() MessageConverter { return jsonConverter{} }

func (jsonConverter) Convert(resp *Response, out any) error {
	if resp == nil || len(resp.Body) == 0 {
		return fmt.Errorf("riptide: empty response body")
	}
	if !gjson.ValidBytes(resp.Body) {
		return fmt.Errorf("riptide: response body is not valid JSON")
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("riptide: decoding JSON body: %w", err)
	}
	return nil
}
