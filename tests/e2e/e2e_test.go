package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classifieds/internal/config"
	"classifieds/internal/database"
	"classifieds/internal/domain"
	"classifieds/internal/middleware"
	"classifieds/internal/modules/account"
	adminmod "classifieds/internal/modules/admin"
	"classifieds/internal/modules/auth"
	"classifieds/internal/modules/message"
	"classifieds/internal/modules/offer"
	"classifieds/internal/modules/report"
	"classifieds/internal/pkg/token"
	"classifieds/internal/repository"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	models := []interface{}{
		&domain.User{},
		&domain.Company{},
		&domain.VehicleOffer{},
		&domain.RealEstateOffer{},
		&domain.CommercialOffer{},
		&domain.Report{},
		&domain.Message{},
	}
	for _, model := range models {
		require.NoError(t, db.AutoMigrate(model), fmt.Sprintf("Failed to migrate %T", model))
	}

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	reportRepo := repository.NewReportRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	cfg := &config.AuthConfig{
		AppEnv:         "test",
		AccessSecret:   "test-access-secret-32-chars-long",
		RefreshSecret:  "test-refresh-secret-32-chars-ok",
		AccessTTL:      time.Hour,
		RefreshTTL:     7 * 24 * time.Hour,
		CookieSameSite: "Strict",
		CookiePath:     "/",
	}

	codec := token.NewCodec(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)
	cookies := auth.NewCookieWriter(cfg)
	sessions := auth.NewSessionController(codec)

	authHandler := auth.NewHandler(auth.NewService(userRepo, companyRepo, codec), sessions, cookies)
	accountHandler := account.NewHandler(account.NewService(userRepo, companyRepo))
	offerHandler := offer.NewHandler(offer.NewService(offerRepo))
	reportHandler := report.NewHandler(report.NewService(reportRepo))
	hub := message.NewHub()
	messageHandler := message.NewHandler(message.NewService(messageRepo, userRepo, companyRepo), hub)
	adminHandler := adminmod.NewHandler(adminmod.NewService(userRepo, companyRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		accountHandler.RegisterRoutes(api, nil)
		offerHandler.RegisterRoutes(api, nil)

		protected := api.Group("/")
		protected.Use(middleware.Session(sessions, cookies))
		{
			offerHandler.RegisterRoutes(nil, protected)
			reportHandler.RegisterRoutes(protected, nil)
			messageHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/")
			adminGroup.Use(middleware.AdminOnly())
			{
				reportHandler.RegisterRoutes(nil, adminGroup)
				accountHandler.RegisterRoutes(nil, adminGroup)
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	// Seed an admin for the moderation flows.
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		FirstName:    "Site",
		LastName:     "Admin",
		Email:        "admin@test.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Active:       true,
		City:         "Paris",
		Country:      "FR",
	})

	return &E2ETestSuite{router: r, db: db}
}

func (s *E2ETestSuite) request(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (s *E2ETestSuite) login(t *testing.T, email, password string) []*http.Cookie {
	w, resp := s.request(t, "POST", "/api/auth", gin.H{
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())
	require.True(t, resp.Success)
	return w.Result().Cookies()
}

func (s *E2ETestSuite) registerUser(t *testing.T, username, email string) {
	w, _ := s.request(t, "POST", "/api/user", gin.H{
		"username":   username,
		"password":   "password123",
		"first_name": "Test",
		"last_name":  "User",
		"email":      email,
		"city":       "Lyon",
		"country":    "FR",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestE2E_RegisterAndLogin(t *testing.T) {
	s := setupTestSuite(t)

	s.registerUser(t, "alice", "alice@test.local")

	cookies := s.login(t, "alice@test.local", "password123")

	names := make(map[string]bool)
	for _, cookie := range cookies {
		names[cookie.Name] = true
		assert.True(t, cookie.HttpOnly, "%s must be HttpOnly", cookie.Name)
	}
	assert.True(t, names[auth.AccessCookieName])
	assert.True(t, names[auth.RefreshCookieName])
}

func TestE2E_LoginUnknownEmail(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, "POST", "/api/auth", gin.H{
		"email":    "ghost@test.local",
		"password": "whatever1",
	}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "EMAIL_NOT_FOUND", resp.Error.Code)
}

func TestE2E_LoginWrongPassword(t *testing.T) {
	s := setupTestSuite(t)
	s.registerUser(t, "alice", "alice@test.local")

	w, resp := s.request(t, "POST", "/api/auth", gin.H{
		"email":    "alice@test.local",
		"password": "wrongpass",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestE2E_DuplicateEmailRejected(t *testing.T) {
	s := setupTestSuite(t)
	s.registerUser(t, "alice", "alice@test.local")

	w, resp := s.request(t, "POST", "/api/user", gin.H{
		"username":   "alice2",
		"password":   "password123",
		"first_name": "Test",
		"last_name":  "User",
		"email":      "alice@test.local",
		"city":       "Lyon",
		"country":    "FR",
	}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)
}

func TestE2E_SessionCheckAndRefresh(t *testing.T) {
	s := setupTestSuite(t)
	s.registerUser(t, "alice", "alice@test.local")
	cookies := s.login(t, "alice@test.local", "password123")

	// Full cookie set: plain authenticated, nothing minted.
	w, resp := s.request(t, "GET", "/api/auth", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User authenticated", resp.Data["message"])
	assert.Empty(t, w.Result().Cookies())

	// Refresh cookie only: a new access token must ride out.
	var refreshOnly []*http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == auth.RefreshCookieName {
			refreshOnly = append(refreshOnly, cookie)
		}
	}
	w, resp = s.request(t, "GET", "/api/auth", nil, refreshOnly)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Token successfully refreshed", resp.Data["message"])

	var minted bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.AccessCookieName && cookie.Value != "" {
			minted = true
		}
	}
	assert.True(t, minted)

	// No cookies at all: unauthorized.
	w, resp = s.request(t, "GET", "/api/auth", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
}

func TestE2E_Logout(t *testing.T) {
	s := setupTestSuite(t)
	s.registerUser(t, "alice", "alice@test.local")
	cookies := s.login(t, "alice@test.local", "password123")

	w, _ := s.request(t, "DELETE", "/api/auth", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		assert.Less(t, cookie.MaxAge, 0, "%s should be expired", cookie.Name)
	}
}

func TestE2E_OfferLifecycle(t *testing.T) {
	s := setupTestSuite(t)
	s.registerUser(t, "alice", "alice@test.local")
	cookies := s.login(t, "alice@test.local", "password123")

	w, resp := s.request(t, "POST", "/api/offer/vehicle", gin.H{
		"title":       "Reliable city car",
		"description": "Low mileage, serviced every year, two previous owners.",
		"price":       8500,
		"city":        "Lyon",
		"country":     "FR",
		"model":       "Clio V",
		"year":        2020,
		"mileage":     42000,
		"fuel_type":   "Petrol",
		"color":       "Blue",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	offerData := resp.Data["offer"].(map[string]interface{})
	offerID := int64(offerData["id"].(float64))
	assert.Equal(t, "user", offerData["owner_type"])

	// Public listing shows it without auth.
	w, resp = s.request(t, "GET", "/api/last-vehicle-offers", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Public lookup by kind and id.
	w, _ = s.request(t, "GET", fmt.Sprintf("/api/offer/vehicle/%d", offerID), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, "GET", "/api/offer/boat/1", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_KIND", resp.Error.Code)

	// Creation requires a session.
	w, _ = s.request(t, "POST", "/api/offer/vehicle", gin.H{}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestE2E_ReportModeration(t *testing.T) {
	s := setupTestSuite(t)
	s.registerUser(t, "alice", "alice@test.local")
	userCookies := s.login(t, "alice@test.local", "password123")

	var alice domain.User
	require.NoError(t, s.db.Where("email = ?", "alice@test.local").First(&alice).Error)

	vehicleID := int64(7)
	w, resp := s.request(t, "POST", "/api/report", gin.H{
		"reason":           "Suspected scam",
		"vehicle_offer_id": vehicleID,
		"reporter_user_id": alice.ID,
		"reporter_type":    "USER",
	}, userCookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "offer reported with success", resp.Data["message"])

	// Members cannot reach the moderation listing.
	w, _ = s.request(t, "GET", "/api/report", nil, userCookies)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminCookies := s.login(t, "admin@test.local", "admin123")

	w, resp = s.request(t, "GET", "/api/report", nil, adminCookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	groups := resp.Data["groups"].([]interface{})
	require.Len(t, groups, 1)

	group := groups[0].(map[string]interface{})
	assert.Equal(t, float64(vehicleID), group["group_key"])
	reports := group["reports"].([]interface{})
	require.Len(t, reports, 1)
	reportID := int64(reports[0].(map[string]interface{})["id"].(float64))

	w, _ = s.request(t, "PUT", fmt.Sprintf("/api/report/%d/approve", reportID), nil, adminCookies)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored domain.Report
	require.NoError(t, s.db.First(&stored, reportID).Error)
	assert.Equal(t, domain.ReportApproved, stored.Status)
}

func TestE2E_Messaging(t *testing.T) {
	s := setupTestSuite(t)
	s.registerUser(t, "alice", "alice@test.local")
	s.registerUser(t, "bruno", "bruno@test.local")
	aliceCookies := s.login(t, "alice@test.local", "password123")
	brunoCookies := s.login(t, "bruno@test.local", "password123")

	var bruno domain.User
	require.NoError(t, s.db.Where("email = ?", "bruno@test.local").First(&bruno).Error)

	w, _ := s.request(t, "POST", "/api/message", gin.H{
		"receiver_id": bruno.ID,
		"content":     "Is the car still available?",
	}, aliceCookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Bruno sees one unread message.
	w, resp := s.request(t, "GET", "/api/message/unread-count", nil, brunoCookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp.Data["unread"])

	var alice domain.User
	require.NoError(t, s.db.Where("email = ?", "alice@test.local").First(&alice).Error)

	w, resp = s.request(t, "GET", "/api/conversation/"+alice.ID, nil, brunoCookies)
	assert.Equal(t, http.StatusOK, w.Code)
	msgs := resp.Data["messages"].([]interface{})
	assert.Len(t, msgs, 1)

	w, resp = s.request(t, "PUT", "/api/conversation/"+alice.ID+"/read", nil, brunoCookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp.Data["updated"])

	w, resp = s.request(t, "GET", "/api/message/unread-count", nil, brunoCookies)
	assert.Equal(t, float64(0), resp.Data["unread"])
}

func TestE2E_BanFlow(t *testing.T) {
	s := setupTestSuite(t)
	s.registerUser(t, "alice", "alice@test.local")
	adminCookies := s.login(t, "admin@test.local", "admin123")

	var alice domain.User
	require.NoError(t, s.db.Where("email = ?", "alice@test.local").First(&alice).Error)

	w, resp := s.request(t, "PUT", "/api/user/"+alice.ID+"/ban", gin.H{
		"reason": "spam listings",
	}, adminCookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	ban := resp.Data["ban"].(map[string]interface{})
	assert.Equal(t, true, ban["is_banned"])
	assert.Equal(t, float64(1), ban["ban_count"])

	// Search finds the banned principal.
	w, resp = s.request(t, "GET", "/api/search?is_banned=true", nil, adminCookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = s.request(t, "PUT", "/api/user/"+alice.ID+"/unban", nil, adminCookies)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, s.db.Where("email = ?", "alice@test.local").First(&alice).Error)
	assert.False(t, alice.IsBanned)
	assert.Equal(t, 1, alice.BanCount)
}
