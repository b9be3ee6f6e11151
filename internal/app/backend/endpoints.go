package backend

import (
	"algofit-storefront/internal/app/ds"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// ListPlans calls GET /plans/ with the given query.
func (c *Client) ListPlans(ctx context.Context, params url.Values) (ds.PlanPage, error) {
	var page ds.PlanPage
	_, err := c.do(ctx, request{method: http.MethodGet, path: "/plans/", query: params, endpoint: "plans"}, &page)
	return page, err
}

func (c *Client) GetPlan(ctx context.Context, id uint) (ds.Plan, error) {
	var plan ds.Plan
	_, err := c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/plans/%d/", id), endpoint: "plan"}, &plan)
	return plan, err
}

func (c *Client) ListMemberships(ctx context.Context) ([]ds.Membership, error) {
	var memberships []ds.Membership
	_, err := c.do(ctx, request{method: http.MethodGet, path: "/memberships", endpoint: "memberships"}, &memberships)
	if memberships == nil {
		memberships = []ds.Membership{}
	}
	return memberships, err
}

// ListReviews calls GET /reviews/. The backend answers either a bare list or a
// paginated envelope; both are accepted.
func (c *Client) ListReviews(ctx context.Context) ([]ds.Review, error) {
	var raw reviewList
	_, err := c.do(ctx, request{method: http.MethodGet, path: "/reviews/", endpoint: "reviews"}, &raw)
	if err != nil {
		return nil, err
	}
	if raw.reviews == nil {
		return []ds.Review{}, nil
	}
	return raw.reviews, nil
}

// RegisterPayload is the body of POST /auth/users/.
type RegisterPayload struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Password    string `json:"password"`
}

func (c *Client) RegisterUser(ctx context.Context, payload RegisterPayload) (ds.User, error) {
	var user ds.User
	_, err := c.do(ctx, request{method: http.MethodPost, path: "/auth/users/", body: payload, endpoint: "register"}, &user)
	return user, err
}

// ActivateUser posts the activation link parameters. Only 204 means the account was activated.
func (c *Client) ActivateUser(ctx context.Context, uid, token string) error {
	status, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/users/activation/",
		body:     map[string]string{"uid": uid, "token": token},
		endpoint: "activation",
	}, nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return &APIError{Status: status, Fields: map[string][]string{}}
	}
	return nil
}

// ResendActivation asks the backend to mail a fresh activation link.
func (c *Client) ResendActivation(ctx context.Context, email string) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/users/resend_activation/",
		body:     map[string]string{"email": email},
		endpoint: "resend_activation",
	}, nil)
	return err
}

func (c *Client) CreateToken(ctx context.Context, email, password string) (ds.BackendTokens, error) {
	var tokens ds.BackendTokens
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/jwt/create/",
		body:     map[string]string{"email": email, "password": password},
		endpoint: "jwt_create",
	}, &tokens)
	if err == nil && tokens.Access == "" {
		err = errors.New("backend issued an empty access token")
	}
	return tokens, err
}

// RefreshToken exchanges a backend refresh token for a new access token. The
// refresh token is kept when the backend does not rotate it.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (ds.BackendTokens, error) {
	var tokens ds.BackendTokens
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/jwt/refresh/",
		body:     map[string]string{"refresh": refresh},
		endpoint: "jwt_refresh",
	}, &tokens)
	if tokens.Refresh == "" {
		tokens.Refresh = refresh
	}
	return tokens, err
}

func (c *Client) Me(ctx context.Context, access string) (ds.User, error) {
	var user ds.User
	_, err := c.do(ctx, request{method: http.MethodGet, path: "/auth/users/me/", token: access, endpoint: "me"}, &user)
	return user, err
}

// ProfilePayload is the body of PATCH /auth/users/me/.
type ProfilePayload struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func (c *Client) UpdateMe(ctx context.Context, access string, payload ProfilePayload) (ds.User, error) {
	var user ds.User
	_, err := c.do(ctx, request{method: http.MethodPatch, path: "/auth/users/me/", body: payload, token: access, endpoint: "me_update"}, &user)
	return user, err
}

func (c *Client) SetPassword(ctx context.Context, access, current, next string) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/users/set_password/",
		body:     map[string]string{"current_password": current, "new_password": next},
		token:    access,
		endpoint: "set_password",
	}, nil)
	return err
}
