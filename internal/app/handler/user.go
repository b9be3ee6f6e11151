package handler

import (
	"algofit-storefront/internal/app/alert"
	"algofit-storefront/internal/app/backend"
	"algofit-storefront/internal/app/config"
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/middleware"
	"algofit-storefront/internal/app/repository"
	"algofit-storefront/internal/app/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	registeredMessage       = "Registration successful! Please check your email to activate your account."
	activatedMessage        = "Account activated successfully!"
	activationFailedMessage = "Invalid or expired activation link. Please request a new activation email."

	// ActivationRedirectSeconds is how long the activation page waits before sending the user to login.
	ActivationRedirectSeconds   = 5
	registrationRedirectSeconds = 3
)

type UserHandler struct {
	repo *repository.Repository
	cfg  *config.Config
}

func NewUserHandler(repo *repository.Repository, cfg *config.Config) *UserHandler {
	return &UserHandler{
		repo: repo,
		cfg:  cfg,
	}
}

type RegisterRequest struct {
	FirstName       string `json:"first_name" binding:"required,min=2"`
	LastName        string `json:"last_name" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,emailaddr"`
	Address         string `json:"address"`
	PhoneNumber     string `json:"phone_number" binding:"omitempty,phone"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type ActivateRequest struct {
	UID   string `json:"uid" binding:"required"`
	Token string `json:"token" binding:"required"`
}

type ResendActivationRequest struct {
	Email string `json:"email" binding:"required,emailaddr"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" binding:"omitempty,min=2"`
	LastName    string `json:"last_name" binding:"omitempty,min=2"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// Redirect tells the client where to go once a countdown elapses.
type Redirect struct {
	To           string `json:"to"`
	AfterSeconds int    `json:"after_seconds"`
	Message      string `json:"message,omitempty"`
}

func validationFailed(ctx *gin.Context, err error, extra gin.H) {
	fields, ok := FieldErrors(err)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	body := gin.H{"error": "Please correct the highlighted fields", "fields": fields}
	for k, v := range extra {
		body[k] = v
	}
	ctx.JSON(http.StatusBadRequest, body)
}

// backendFailed maps a backend answer onto the response. Client errors keep
// the backend's wording; anything else is a gateway failure.
func backendFailed(ctx *gin.Context, err error, fallback string) {
	apiErr, ok := backend.AsAPIError(err)
	if !ok || apiErr.Status >= 500 {
		logrus.Error(err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": fallback})
		return
	}
	body := gin.H{"error": apiErr.Message()}
	if len(apiErr.Fields) > 0 {
		fields := make(map[string]string, len(apiErr.Fields))
		for name := range apiErr.Fields {
			fields[name] = apiErr.Field(name)
		}
		body["fields"] = fields
	}
	ctx.JSON(apiErr.Status, body)
}

// Register godoc
// @Summary Register new user
// @Description Validates the sign-up form and creates the account on the backend; the backend mails an activation link
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /auth/register [post]
func (h *UserHandler) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		validationFailed(ctx, err, gin.H{"password_requirements": PasswordRequirements(req.Password)})
		return
	}

	user, err := h.repo.Backend().RegisterUser(ctx.Request.Context(), backend.RegisterPayload{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		backendFailed(ctx, err, "Registration failed. Please try again.")
		return
	}

	logrus.Infof("registered user %s", user.Email)
	ctx.JSON(http.StatusCreated, gin.H{
		"message":  registeredMessage,
		"user":     user,
		"notice":   alert.NewSuccess(registeredMessage),
		"redirect": Redirect{To: "/login", AfterSeconds: registrationRedirectSeconds, Message: "Registration successful! Please login."},
	})
}

// PasswordCheck godoc
// @Summary Password checklist
// @Description Evaluates a candidate password against the sign-up requirements
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body map[string]string true "{\"password\": \"...\"}"
// @Success 200 {array} PasswordRequirement
// @Router /auth/password-requirements [post]
func (h *UserHandler) PasswordCheck(ctx *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	_ = ctx.ShouldBindJSON(&req)
	ctx.JSON(http.StatusOK, PasswordRequirements(req.Password))
}

// Activate godoc
// @Summary Activate account
// @Description Confirms the uid and token from the activation email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ActivateRequest true "Activation link parameters"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]string
// @Router /auth/activate [post]
func (h *UserHandler) Activate(ctx *gin.Context) {
	var req ActivateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		validationFailed(ctx, err, nil)
		return
	}

	if err := h.repo.Backend().ActivateUser(ctx.Request.Context(), req.UID, req.Token); err != nil {
		message := activationFailedMessage
		if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Detail != "" {
			message = apiErr.Detail
		} else if !ok {
			logrus.Error(err)
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": message, "notice": alert.NewError(message)})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  activatedMessage,
		"notice":   alert.NewSuccess(activatedMessage),
		"redirect": Redirect{To: "/login", AfterSeconds: ActivationRedirectSeconds, Message: "Account activated successfully! Please login."},
	})
}

// ResendActivation godoc
// @Summary Resend activation email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ResendActivationRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]string
// @Router /auth/activate/resend [post]
func (h *UserHandler) ResendActivation(ctx *gin.Context) {
	var req ResendActivationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		validationFailed(ctx, err, nil)
		return
	}
	if err := h.repo.Backend().ResendActivation(ctx.Request.Context(), req.Email); err != nil {
		backendFailed(ctx, err, "Failed to resend activation email. Please try again.")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Activation email sent. Please check your inbox."})
}

func (h *UserHandler) issueTokens(ctx *gin.Context, session ds.Session) (ds.TokenResponse, bool) {
	accessToken, err := utils.GenerateAccessToken(session.User, session.ID, h.cfg.JWTSecret, h.cfg.JWTAccessExpire)
	if err != nil {
		logrus.Error("Failed to generate access token: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return ds.TokenResponse{}, false
	}

	refreshToken, err := utils.GenerateRefreshToken(session.User, session.ID, h.cfg.JWTSecret, h.cfg.JWTRefreshExpire)
	if err != nil {
		logrus.Error("Failed to generate refresh token: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return ds.TokenResponse{}, false
	}

	if err := h.repo.Session.SaveRefreshToken(ctx.Request.Context(), session.ID, refreshToken); err != nil {
		logrus.Error("Failed to save refresh token: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return ds.TokenResponse{}, false
	}

	return ds.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(h.cfg.JWTAccessExpire),
		UserID:       session.User.ID,
		Email:        session.User.Email,
		IsStaff:      session.User.IsStaff,
	}, true
}

// Login godoc
// @Summary User login
// @Description Authenticates against the backend and returns storefront JWT tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ds.LoginRequest true "Login credentials"
// @Success 200 {object} ds.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func (h *UserHandler) Login(ctx *gin.Context) {
	var req ds.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	session, err := h.repo.Session.Login(ctx.Request.Context(), req.Email, req.Password, ctx.ClientIP())
	if err != nil {
		if backend.IsUnauthorized(err) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		backendFailed(ctx, err, "Login failed. Please try again.")
		return
	}

	resp, ok := h.issueTokens(ctx, session)
	if !ok {
		return
	}

	logrus.Infof("User session saved for user_id: %d", session.User.ID)
	ctx.JSON(http.StatusOK, resp)
}

// RefreshToken godoc
// @Summary Refresh tokens
// @Description Exchanges a storefront refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} ds.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *UserHandler) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	claims, err := utils.ValidateRefreshToken(req.RefreshToken, h.cfg.JWTSecret)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	ok, err := h.repo.Session.RefreshTokenMatches(ctx.Request.Context(), claims.SessionID, req.RefreshToken)
	if err != nil || !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token not found"})
		return
	}

	session, err := h.repo.Session.Get(ctx.Request.Context(), claims.SessionID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}

	if session.Backend.Refresh != "" {
		if renewed, err := h.repo.Session.RenewBackend(ctx.Request.Context(), session); err != nil {
			logrus.Warnf("backend token refresh failed for session %s: %v", session.ID, err)
		} else {
			session = renewed
		}
	}

	resp, ok := h.issueTokens(ctx, session)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary User logout
// @Description Revokes the access token and ends the session
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/logout [post]
func (h *UserHandler) Logout(ctx *gin.Context) {
	tokenString, _ := middleware.GetToken(ctx)
	claims, _ := middleware.GetClaims(ctx)

	if err := h.repo.Session.Blacklist(ctx.Request.Context(), tokenString, utils.ExpiresAt(claims)); err != nil {
		logrus.Error("Failed to add token to blacklist: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	if sessionID, ok := middleware.GetSessionID(ctx); ok {
		if err := h.repo.Session.Delete(ctx.Request.Context(), sessionID); err != nil {
			logrus.Error("Failed to delete user session: ", err)
		} else {
			logrus.Infof("User session deleted for session: %s", sessionID)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *UserHandler) session(ctx *gin.Context) (ds.Session, bool) {
	sessionID, ok := middleware.GetSessionID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return ds.Session{}, false
	}
	session, err := h.repo.Session.Get(ctx.Request.Context(), sessionID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return ds.Session{}, false
	}
	return session, true
}

// GetProfile godoc
// @Summary Get user profile
// @Description Profile of the logged-in user as the backend reports it
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ds.User
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *UserHandler) GetProfile(ctx *gin.Context) {
	session, ok := h.session(ctx)
	if !ok {
		return
	}

	user, err := h.repo.Backend().Me(ctx.Request.Context(), session.Backend.Access)
	if backend.IsUnauthorized(err) && session.Backend.Refresh != "" {
		renewed, renewErr := h.repo.Session.RenewBackend(ctx.Request.Context(), session)
		if renewErr == nil {
			user, err = h.repo.Backend().Me(ctx.Request.Context(), renewed.Backend.Access)
		}
	}
	if err != nil {
		logrus.Warnf("serving cached profile for session %s: %v", session.ID, err)
		user = session.User
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update user profile
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} ds.User
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/me [put]
func (h *UserHandler) UpdateProfile(ctx *gin.Context) {
	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		validationFailed(ctx, err, nil)
		return
	}
	session, ok := h.session(ctx)
	if !ok {
		return
	}

	user, err := h.repo.Backend().UpdateMe(ctx.Request.Context(), session.Backend.Access, backend.ProfilePayload{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		backendFailed(ctx, err, "Failed to update profile. Please try again.")
		return
	}

	session.User = user
	if err := h.repo.Session.Save(ctx.Request.Context(), session); err != nil {
		logrus.Error(err)
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!", "user": user})
}

// ChangePassword godoc
// @Summary Change password
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/password [post]
func (h *UserHandler) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		validationFailed(ctx, err, gin.H{"password_requirements": PasswordRequirements(req.NewPassword)})
		return
	}
	session, ok := h.session(ctx)
	if !ok {
		return
	}

	if err := h.repo.Backend().SetPassword(ctx.Request.Context(), session.Backend.Access, req.CurrentPassword, req.NewPassword); err != nil {
		backendFailed(ctx, err, "Failed to change password. Please try again.")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
