package catalog

import (
	"algofit-storefront/internal/app/alert"
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/metrics"
	"context"
	"errors"
)

// State is the lifecycle position of a catalog view.
type State string

const (
	StateInitial State = "initial"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateEmpty   State = "empty"
	StateError   State = "error"
)

// EmptyMessage is shown when a query matches no plans.
const EmptyMessage = "No plans found"

// Ticket identifies one issued fetch. Only the ticket of the latest
// generation may change the view.
type Ticket struct {
	Generation uint64     `json:"generation"`
	Query      QueryState `json:"query"`
}

// View owns the QueryState of one catalog screen and the outcome of its
// latest fetch. A View is driven from a single goroutine.
type View struct {
	query       QueryState
	state       State
	generation  uint64
	result      Result
	err         error
	memberships []ds.Membership

	siblingCount  int
	boundaryCount int
}

type ViewOption func(*View)

// WithQuery starts the view from q instead of the default query.
func WithQuery(q QueryState) ViewOption {
	return func(v *View) {
		v.query = q.Normalized()
	}
}

func WithPagerCounts(siblingCount, boundaryCount int) ViewOption {
	return func(v *View) {
		v.siblingCount = siblingCount
		v.boundaryCount = boundaryCount
	}
}

func WithMemberships(memberships []ds.Membership) ViewOption {
	return func(v *View) {
		v.memberships = memberships
	}
}

func NewView(opts ...ViewOption) *View {
	v := &View{
		query:         DefaultQuery(),
		state:         StateInitial,
		siblingCount:  DefaultSiblingCount,
		boundaryCount: DefaultBoundaryCount,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *View) Query() QueryState { return v.query }

func (v *View) State() State { return v.state }

func (v *View) Generation() uint64 { return v.generation }

func (v *View) SetMemberships(memberships []ds.Membership) {
	v.memberships = memberships
}

func (v *View) issue() Ticket {
	v.generation++
	v.state = StateLoading
	v.result = Result{}
	v.err = nil
	return Ticket{Generation: v.generation, Query: v.query}
}

// Start moves a freshly mounted view to loading. It reports false once the view has started.
func (v *View) Start() (Ticket, bool) {
	if v.state != StateInitial {
		return Ticket{}, false
	}
	return v.issue(), true
}

// Retry reissues the current query after a failed fetch.
func (v *View) Retry() (Ticket, bool) {
	if v.state != StateError {
		return Ticket{}, false
	}
	return v.issue(), true
}

// Pending returns the ticket of the fetch in flight, if any.
func (v *View) Pending() (Ticket, bool) {
	if v.state != StateLoading {
		return Ticket{}, false
	}
	return Ticket{Generation: v.generation, Query: v.query}, true
}

// Dispatch applies in to the query. A fetch is issued when the query changed,
// or when the view has not started yet.
func (v *View) Dispatch(in Intent) (Ticket, bool) {
	next := Apply(v.query, in)
	if next == v.query && v.state != StateInitial {
		return Ticket{}, false
	}
	v.query = next
	return v.issue(), true
}

// Resolve applies the outcome of the fetch identified by t. Outcomes of
// superseded tickets are discarded and reported as false.
func (v *View) Resolve(t Ticket, res Result, err error) bool {
	if v.state != StateLoading || t.Generation != v.generation {
		metrics.CatalogStaleResponsesTotal.Inc()
		return false
	}
	switch {
	case err != nil:
		v.state = StateError
		v.err = err
		v.result = Result{}
	case len(res.Items) > 0:
		v.state = StateReady
		v.result = res
	default:
		v.state = StateEmpty
		v.result = res
		v.result.Items = []ds.Plan{}
	}
	metrics.CatalogFetchTotal.WithLabelValues(string(v.state)).Inc()
	return true
}

// Load runs the pending fetch, starting the view if needed, and returns the
// resulting snapshot.
func (v *View) Load(ctx context.Context, f Fetcher) Snapshot {
	t, ok := v.Pending()
	if !ok {
		if t, ok = v.Start(); !ok {
			t, ok = v.Retry()
		}
	}
	if ok {
		res, err := f.Fetch(ctx, t.Query)
		v.Resolve(t, res, err)
	}
	return v.Snapshot()
}

// Snapshot is what a renderer needs to draw the catalog.
type Snapshot struct {
	State      State             `json:"state"`
	Query      QueryState        `json:"query"`
	Items      []ds.Plan         `json:"items"`
	Pagination ds.PaginationInfo `json:"pagination"`
	Pager      Pager             `json:"pager"`
	Badges     []Badge           `json:"badges"`
	Message    string            `json:"message,omitempty"`
	Notice     *alert.Notice     `json:"notice,omitempty"`
}

// Snapshot renders the current state. Items are only present when ready;
// the pager points at the current page clamped to the existing pages.
func (v *View) Snapshot() Snapshot {
	s := Snapshot{
		State:  v.state,
		Query:  v.query,
		Items:  []ds.Plan{},
		Pager:  Navigate(0, 1, v.siblingCount, v.boundaryCount),
		Badges: Badges(v.query, v.memberships),
		Pagination: ds.PaginationInfo{
			Page:       v.query.Page,
			PageSize:   v.result.PageSize,
			Total:      v.result.TotalCount,
			TotalPages: v.result.TotalPages,
		},
	}
	switch v.state {
	case StateReady:
		s.Items = v.result.Items
		page := clamp(v.query.Page, 1, max(v.result.TotalPages, 1))
		s.Pager = Navigate(v.result.TotalPages, page, v.siblingCount, v.boundaryCount)
	case StateEmpty:
		s.Message = EmptyMessage
	case StateError:
		s.Message = ErrorMessage(v.err)
		s.Notice = alert.NewError(s.Message)
	}
	return s
}

// ErrorMessage is the user-facing text of a fetch failure.
func ErrorMessage(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	return fetchFailedMessage
}
