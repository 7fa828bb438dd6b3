package crm

import (
	"encoding/json"
	"fmt"
)

type reply struct {
	Result           json.RawMessage `json:"result"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

// outcome is either a created entity id or a rejection reason, never both.
type outcome struct {
	id       int64
	rejected string
}

func (o outcome) created() bool {
	return o.id > 0
}

// parseReply decodes a CRM response body. Any shape other than a positive numeric
// result is a rejection; fallback is used when the CRM gives no description.
func parseReply(body []byte, fallback string) (outcome, error) {
	var r reply
	if err := json.Unmarshal(body, &r); err != nil {
		return outcome{}, fmt.Errorf("decode bitrix24 response: %w", err)
	}

	if len(r.Result) > 0 {
		var id int64
		if err := json.Unmarshal(r.Result, &id); err == nil && id > 0 {
			return outcome{id: id}, nil
		}
	}

	switch {
	case r.ErrorDescription != "":
		return outcome{rejected: r.ErrorDescription}, nil
	case r.Error != "":
		return outcome{rejected: r.Error}, nil
	default:
		return outcome{rejected: fallback}, nil
	}
}
