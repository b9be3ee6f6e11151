package backend

import (
	"algofit-storefront/internal/app/ds"
	"bytes"
	"encoding/json"
)

type reviewList struct {
	reviews []ds.Review
}

func (l *reviewList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &l.reviews)
	}
	var page struct {
		Results []ds.Review `json:"results"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	l.reviews = page.Results
	return nil
}
