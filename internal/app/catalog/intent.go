package catalog

import (
	"fmt"
	"strings"
)

// IntentPayload is the wire form of an Intent. Type selects the intent and
// only the fields that intent uses are read.
type IntentPayload struct {
	Type  string `json:"type" binding:"required"`
	Index int    `json:"index,omitempty"`
	Value string `json:"value,omitempty"`
	ID    string `json:"id,omitempty"`
	Text  string `json:"text,omitempty"`
	Key   string `json:"key,omitempty"`
	Page  int    `json:"page,omitempty"`
}

// UnknownIntentError is returned for a payload whose type names no intent.
type UnknownIntentError struct {
	Type string
}

func (e *UnknownIntentError) Error() string {
	return fmt.Sprintf("unknown intent %q", e.Type)
}

// DecodeIntent builds the intent described by p. Price values are coerced
// against q so malformed numbers keep the current bound.
func DecodeIntent(q QueryState, p IntentPayload) (Intent, error) {
	switch strings.TrimSpace(p.Type) {
	case SetPriceRange{}.Name():
		return PriceIntent(q, p.Index, p.Value), nil
	case ClearPrice{}.Name():
		return ClearPrice{}, nil
	case SetMembership{}.Name():
		return SetMembership{ID: p.ID}, nil
	case SetSearch{}.Name():
		return SetSearch{Text: p.Text}, nil
	case SetSort{}.Name():
		return SetSort{Key: ParseSortKey(p.Key)}, nil
	case SetPage{}.Name():
		return SetPage{Page: p.Page}, nil
	case Reset{}.Name():
		return Reset{}, nil
	}
	return nil, &UnknownIntentError{Type: p.Type}
}

// EncodeIntent is the inverse of DecodeIntent.
func EncodeIntent(in Intent) IntentPayload {
	switch i := in.(type) {
	case SetPriceRange:
		return IntentPayload{Type: i.Name(), Index: i.Index, Value: fmt.Sprint(i.Value)}
	case SetMembership:
		return IntentPayload{Type: i.Name(), ID: i.ID}
	case SetSearch:
		return IntentPayload{Type: i.Name(), Text: i.Text}
	case SetSort:
		return IntentPayload{Type: i.Name(), Key: string(i.Key)}
	case SetPage:
		return IntentPayload{Type: i.Name(), Page: i.Page}
	case nil:
		return IntentPayload{}
	}
	return IntentPayload{Type: in.Name()}
}
