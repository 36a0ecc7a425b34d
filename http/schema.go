package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"cheongyak-calculator/domain"
	"cheongyak-calculator/service"

	"github.com/xeipuuv/gojsonschema"
)

// scoreFormSchema checks shape only. Presence and value rules belong to
// service.ParseForm so that an absent field reports MISSING_FIELD.
const scoreFormSchema = `{
  "type": "object",
  "properties": {
    "birthDate":        {"type": "string"},
    "homelessYears":    {"type": ["string", "integer"]},
    "dependents":       {"type": ["string", "integer"]},
    "subscriptionDate": {"type": "string"}
  },
  "additionalProperties": false
}`

var scoreFormLoader = gojsonschema.NewStringLoader(scoreFormSchema)

// decodeScoreForm validates body against scoreFormSchema and decodes it.
// Numeric counts are accepted as JSON integers as well as strings.
func decodeScoreForm(body []byte) (domain.ScoreForm, error) {
	result, err := gojsonschema.Validate(scoreFormLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return domain.ScoreForm{}, &service.ValidationError{
			Code:    service.ErrCodeInvalidField,
			Message: "request body must be a JSON object",
		}
	}
	if !result.Valid() {
		var fields, msgs []string
		for _, desc := range result.Errors() {
			fields = append(fields, desc.Field())
			msgs = append(msgs, desc.String())
		}
		return domain.ScoreForm{}, &service.ValidationError{
			Code:    service.ErrCodeInvalidField,
			Message: strings.Join(msgs, "; "),
			Fields:  fields,
		}
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.ScoreForm{}, fmt.Errorf("decode score form: %w", err)
	}
	return domain.ScoreForm{
		BirthDate:        stringField(raw["birthDate"]),
		HomelessYears:    stringField(raw["homelessYears"]),
		Dependents:       stringField(raw["dependents"]),
		SubscriptionDate: stringField(raw["subscriptionDate"]),
	}, nil
}

func stringField(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	default:
		return ""
	}
}
