package main

import (
	"algofit-storefront/internal/app/alert"
	"algofit-storefront/internal/app/catalog"
	"bytes"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFlagsValues(t *testing.T) {
	flags := &queryFlags{priceMin: "$20", priceMax: "2000", search: "yoga", sort: "-price", page: 3}
	q := catalog.ParseQuery(flags.values())

	assert.Equal(t, 20, q.PriceMin)
	assert.Equal(t, catalog.PriceUpperBound, q.PriceMax)
	assert.Equal(t, "yoga", q.Search)
	assert.Equal(t, catalog.SortPriceDesc, q.Sort)
	assert.Equal(t, 3, q.Page)

	assert.Equal(t, url.Values{}, (&queryFlags{}).values())
}

func TestPrintSnapshot(t *testing.T) {
	var buf bytes.Buffer
	empty := catalog.Snapshot{State: catalog.StateEmpty, Message: catalog.EmptyMessage, Items: nil}
	require.NoError(t, printSnapshot(&buf, empty, false))
	assert.Contains(t, buf.String(), "No plans found")

	buf.Reset()
	failed := catalog.Snapshot{State: catalog.StateError, Message: "Failed to load plans. Please try again."}
	failed.Notice = alert.NewError(failed.Message)
	err := printSnapshot(&buf, failed, true)
	require.Error(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "error", decoded["state"])
}
