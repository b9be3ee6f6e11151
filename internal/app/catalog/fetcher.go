package catalog

import (
	"algofit-storefront/internal/app/ds"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Backend list parameters, fixed by the plans endpoint contract.
const (
	paramPriceGT    = "price__gt"
	paramPriceLT    = "price__lt"
	paramPage       = "page"
	paramMembership = "membership_id"
	paramSearch     = "search"
	paramOrdering   = "ordering"
)

// BackendParams derives the GET /plans/ query for q. All six parameters are
// always present, empty when the dimension is unset.
func BackendParams(q QueryState) url.Values {
	q = q.Normalized()
	v := url.Values{}
	v.Set(paramPriceGT, strconv.Itoa(q.PriceMin))
	v.Set(paramPriceLT, strconv.Itoa(q.PriceMax))
	v.Set(paramPage, strconv.Itoa(q.Page))
	v.Set(paramMembership, q.MembershipID)
	v.Set(paramSearch, q.Search)
	v.Set(paramOrdering, q.Sort.Ordering())
	return v
}

// PlanSource is the backend collaborator that serves plan pages.
type PlanSource interface {
	ListPlans(ctx context.Context, params url.Values) (ds.PlanPage, error)
}

// Fetcher produces a Result for a QueryState.
type Fetcher interface {
	Fetch(ctx context.Context, q QueryState) (Result, error)
}

// Result is the normalised outcome of one catalog fetch.
type Result struct {
	Items      []ds.Plan `json:"items"`
	TotalCount int64     `json:"total_count"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

// FetchError is a network or server failure, distinct from an empty result.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

const fetchFailedMessage = "Failed to load plans. Please try again."

type statusCoder interface {
	StatusCode() int
}

// ResultFetcher turns QueryStates into backend requests and normalises the
// responses. The page size is the one the backend declares, so the number of
// pages never depends on how many items the current page happens to hold.
type ResultFetcher struct {
	source   PlanSource
	pageSize int
}

func NewResultFetcher(source PlanSource, pageSize int) *ResultFetcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ResultFetcher{
		source:   source,
		pageSize: pageSize,
	}
}

// DefaultPageSize matches the backend's PAGE_SIZE setting.
const DefaultPageSize = 10

func (f *ResultFetcher) PageSize() int {
	return f.pageSize
}

func (f *ResultFetcher) Fetch(ctx context.Context, q QueryState) (Result, error) {
	q = q.Normalized()

	page, err := f.source.ListPlans(ctx, BackendParams(q))
	if err != nil {
		// The backend answers 404 for a page past the end; that is an empty page.
		var sc statusCoder
		if q.Page > 1 && errors.As(err, &sc) && sc.StatusCode() == http.StatusNotFound {
			return f.normalize(ds.PlanPage{}), nil
		}
		return Result{}, &FetchError{Message: fetchFailedMessage, Err: err}
	}

	return f.normalize(page), nil
}

func (f *ResultFetcher) normalize(page ds.PlanPage) Result {
	items := page.Results
	if items == nil {
		items = []ds.Plan{}
	}
	total := page.Count
	if total < 0 {
		total = 0
	}
	return Result{
		Items:      items,
		TotalCount: total,
		PageSize:   f.pageSize,
		TotalPages: ds.TotalPages(total, f.pageSize),
	}
}
