package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"addressbook/config"
	httpmiddleware "addressbook/internal/delivery/http/middleware"
	"addressbook/internal/delivery/http/router"
	"addressbook/internal/delivery/http/router/handler"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/errors"
	"addressbook/internal/infra/metrics"
	"addressbook/internal/infra/validator"
	mockUC "addressbook/internal/mocks/usecase"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken     = "token-1"
	testContactID = "ckcontact0000001"
	testAddressID = "ckaddress0000001"
)

type serverFixtures struct {
	echo      *echo.Echo
	userUC    *mockUC.MockUserUsecase
	contactUC *mockUC.MockContactUsecase
	addressUC *mockUC.MockAddressUsecase
	collector *metrics.Collector
}

func newTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Metrics: &config.MetricsConfig{Enabled: true, Namespace: "test"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	userUC := mockUC.NewMockUserUsecase(t)
	contactUC := mockUC.NewMockContactUsecase(t)
	addressUC := mockUC.NewMockAddressUsecase(t)
	collector := metrics.NewCollector("test")

	e := NewEcho(ServerParams{
		Cfg:       cfg,
		Logger:    logger,
		Collector: collector,
		Validator: validator.New(),
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
			ContactHandler: handler.NewContactHandler(handler.ContactHandlerParams{ContactUC: contactUC, Logger: logger}),
			AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: addressUC, Logger: logger}),
			AuthMiddleware: httpmiddleware.NewAuthMiddleware(httpmiddleware.AuthMiddlewareParams{
				UserUC:    userUC,
				Collector: collector,
				Logger:    logger,
			}),
			Collector: collector,
			Config:    cfg,
		},
	})

	return serverFixtures{
		echo:      e,
		userUC:    userUC,
		contactUC: contactUC,
		addressUC: addressUC,
		collector: collector,
	}
}

func (fx serverFixtures) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

// authenticate makes the token resolve to alice.
func (fx serverFixtures) authenticate() *entity.User {
	token := testToken
	user := &entity.User{Username: "alice", Name: "Alice", Token: &token}
	fx.userUC.EXPECT().ResolveToken(mock.Anything, testToken).Return(user, nil)

	return user
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestServer_Register(t *testing.T) {
	fx := newTestServer(t)

	fx.userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterUserInput{Username: "t", Password: "t", Name: "t"}).
		Return(&entity.User{Username: "t", Name: "t", Password: "hash"}, nil)

	rec := fx.do(http.MethodPost, "/api/users", `{"username":"t","password":"t","name":"t"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"t","name":"t"}}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_Register_Duplicate(t *testing.T) {
	fx := newTestServer(t)

	fx.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameExists)

	rec := fx.do(http.MethodPost, "/api/users", `{"username":"t","password":"t","name":"t"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":"Username already exists"}`, rec.Body.String())
}

func TestServer_ValidationErrorCarriesFieldDetail(t *testing.T) {
	fx := newTestServer(t)
	fx.authenticate()

	fx.contactUC.EXPECT().
		Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "first_name",
			Tag:     "required",
			Message: "is required",
		}))

	rec := fx.do(http.MethodPost, "/api/contacts", `{"first_name":""}`, testToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"errors":"Validation error","data":[{"field":"first_name","tag":"required","message":"is required"}]}`,
		rec.Body.String())
}

func TestServer_MalformedBody(t *testing.T) {
	fx := newTestServer(t)

	rec := fx.do(http.MethodPost, "/api/users/login", `{"username":`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":"Invalid request body"}`, rec.Body.String())
}

func TestServer_CurrentUser(t *testing.T) {
	t.Run("anonymous is unauthorized", func(t *testing.T) {
		fx := newTestServer(t)

		rec := fx.do(http.MethodGet, "/api/users/current", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"errors":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("unknown token is unauthorized", func(t *testing.T) {
		fx := newTestServer(t)
		fx.userUC.EXPECT().ResolveToken(mock.Anything, "stale").Return(nil, nil)

		rec := fx.do(http.MethodGet, "/api/users/current", "", "stale")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("resolved token", func(t *testing.T) {
		fx := newTestServer(t)
		user := fx.authenticate()
		fx.userUC.EXPECT().Get(mock.Anything, user).Return(user, nil)

		rec := fx.do(http.MethodGet, "/api/users/current", "", testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"username":"alice","name":"Alice"}}`, rec.Body.String())
	})

	t.Run("storage failure during resolution", func(t *testing.T) {
		fx := newTestServer(t)
		fx.userUC.EXPECT().ResolveToken(mock.Anything, testToken).Return(nil, errors.New("db down"))

		rec := fx.do(http.MethodGet, "/api/users/current", "", testToken)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "db down", decode(t, rec)["errors"])
	})
}

func TestServer_Login(t *testing.T) {
	fx := newTestServer(t)
	token := "fresh"

	fx.userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "t", Password: "t"}).
		Return(&entity.User{Username: "t", Name: "t", Token: &token}, nil)

	rec := fx.do(http.MethodPost, "/api/users/login", `{"username":"t","password":"t"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"t","name":"t","token":"fresh"}}`, rec.Body.String())
}

func TestServer_Login_InvalidCredentials(t *testing.T) {
	fx := newTestServer(t)

	fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := fx.do(http.MethodPost, "/api/users/login", `{"username":"t","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"errors":"Credentials is invalid"}`, rec.Body.String())
}

func TestServer_Logout(t *testing.T) {
	fx := newTestServer(t)
	user := fx.authenticate()
	fx.userUC.EXPECT().Logout(mock.Anything, user).Return(&entity.User{Username: "alice", Name: "Alice"}, nil)

	rec := fx.do(http.MethodDelete, "/api/users/current", "", testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":true}`, rec.Body.String())
}

func TestServer_UpdateUser_PassesOnlyPresentFields(t *testing.T) {
	fx := newTestServer(t)
	user := fx.authenticate()

	fx.userUC.EXPECT().
		Update(mock.Anything, user, mock.MatchedBy(func(in *usecase.UpdateUserInput) bool {
			return in.Name != nil && *in.Name == "Alicia" && in.Password == nil
		})).
		Return(&entity.User{Username: "alice", Name: "Alicia"}, nil)

	rec := fx.do(http.MethodPatch, "/api/users/current", `{"name":"Alicia"}`, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"alice","name":"Alicia"}}`, rec.Body.String())
}

func TestServer_ContactNotFound(t *testing.T) {
	fx := newTestServer(t)
	user := fx.authenticate()

	fx.contactUC.EXPECT().
		Get(mock.Anything, user, &usecase.ContactIDInput{ContactID: testContactID}).
		Return(nil, domainerrors.ErrContactNotFound)

	rec := fx.do(http.MethodGet, "/api/contacts/"+testContactID, "", testToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"errors":"Contact not found"}`, rec.Body.String())
}

func TestServer_UpdateContact_PathIDWins(t *testing.T) {
	fx := newTestServer(t)
	user := fx.authenticate()
	email := "john@example.com"

	fx.contactUC.EXPECT().
		Update(mock.Anything, user, mock.MatchedBy(func(in *usecase.UpdateContactInput) bool {
			return in.ID == testContactID && in.FirstName == "John"
		})).
		Return(&entity.Contact{ID: testContactID, Username: "alice", FirstName: "John", Email: &email}, nil)

	rec := fx.do(http.MethodPatch, "/api/contacts/"+testContactID, `{"id":"cother0000000","first_name":"John"}`, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":{"id":"ckcontact0000001","username":"alice","first_name":"John","last_name":null,"email":"john@example.com","phone":null}}`,
		rec.Body.String())
}

func TestServer_SearchContacts(t *testing.T) {
	t.Run("defaults and paging", func(t *testing.T) {
		fx := newTestServer(t)
		user := fx.authenticate()
		name := "jo"

		fx.contactUC.EXPECT().
			Search(mock.Anything, user, &usecase.SearchContactInput{Name: &name, Page: 1, Size: 10}).
			Return(&usecase.SearchContactOutput{
				Contacts: []*entity.Contact{{ID: testContactID, Username: "alice", FirstName: "John"}},
				Paging:   usecase.Paging{Page: 1, Size: 10, TotalPage: 1, Total: 1},
			}, nil)

		rec := fx.do(http.MethodGet, "/api/contacts?name=jo", "", testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Len(t, body["data"], 1)
		assert.Equal(t, map[string]any{"size": float64(10), "current_page": float64(1), "total_page": float64(1)}, body["paging"])
	})

	t.Run("non-integer page", func(t *testing.T) {
		fx := newTestServer(t)
		fx.authenticate()

		rec := fx.do(http.MethodGet, "/api/contacts?page=abc", "", testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"errors":"Invalid request body"}`, rec.Body.String())
	})

	t.Run("present empty filter reaches validation", func(t *testing.T) {
		fx := newTestServer(t)
		user := fx.authenticate()
		empty := ""

		fx.contactUC.EXPECT().
			Search(mock.Anything, user, &usecase.SearchContactInput{Email: &empty, Page: 2, Size: 5}).
			Return(nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "email", Tag: "min", Message: "must contain at least 1 character(s)"}))

		rec := fx.do(http.MethodGet, "/api/contacts?email=&page=2&size=5", "", testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_DeleteContact(t *testing.T) {
	fx := newTestServer(t)
	user := fx.authenticate()

	fx.contactUC.EXPECT().Delete(mock.Anything, user, &usecase.ContactIDInput{ContactID: testContactID}).Return(nil)

	rec := fx.do(http.MethodDelete, "/api/contacts/"+testContactID, "", testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":true}`, rec.Body.String())
}

func TestServer_Addresses(t *testing.T) {
	t.Run("create takes contact id from path", func(t *testing.T) {
		fx := newTestServer(t)
		user := fx.authenticate()

		fx.addressUC.EXPECT().
			Create(mock.Anything, user, &usecase.CreateAddressInput{ContactID: testContactID, Country: "X", PostalCode: "1"}).
			Return(&entity.Address{ID: testAddressID, ContactID: testContactID, Country: "X", PostalCode: "1"}, nil)

		rec := fx.do(http.MethodPost, "/api/contacts/"+testContactID+"/addresses", `{"country":"X","postalCode":"1"}`, testToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t,
			`{"data":{"id":"ckaddress0000001","contactId":"ckcontact0000001","street":null,"city":null,"province":null,"country":"X","postalCode":"1"}}`,
			rec.Body.String())
	})

	t.Run("mismatched pair is not found", func(t *testing.T) {
		fx := newTestServer(t)
		user := fx.authenticate()

		fx.addressUC.EXPECT().
			Get(mock.Anything, user, &usecase.AddressIDInput{ContactID: "cwrong0000000", AddressID: testAddressID}).
			Return(nil, domainerrors.ErrContactNotFound)

		rec := fx.do(http.MethodGet, "/api/contacts/cwrong0000000/addresses/"+testAddressID, "", testToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		fx := newTestServer(t)
		user := fx.authenticate()

		fx.addressUC.EXPECT().
			List(mock.Anything, user, &usecase.ListAddressInput{ContactID: testContactID}).
			Return([]*entity.Address{}, nil)

		rec := fx.do(http.MethodGet, "/api/contacts/"+testContactID+"/addresses", "", testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
	})

	t.Run("update and remove", func(t *testing.T) {
		fx := newTestServer(t)
		user := fx.authenticate()
		path := "/api/contacts/" + testContactID + "/addresses/" + testAddressID

		fx.addressUC.EXPECT().
			Update(mock.Anything, user, mock.MatchedBy(func(in *usecase.UpdateAddressInput) bool {
				return in.ID == testAddressID && in.ContactID == testContactID && in.Country == "Y"
			})).
			Return(&entity.Address{ID: testAddressID, ContactID: testContactID, Country: "Y", PostalCode: "2"}, nil)
		fx.addressUC.EXPECT().
			Remove(mock.Anything, user, &usecase.AddressIDInput{ContactID: testContactID, AddressID: testAddressID}).
			Return(nil)

		rec := fx.do(http.MethodPatch, path, `{"country":"Y","postalCode":"2"}`, testToken)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = fx.do(http.MethodDelete, path, "", testToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":true}`, rec.Body.String())
	})
}

func TestServer_AmbientRoutes(t *testing.T) {
	fx := newTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, rec.Body.String())

	rec = fx.do(http.MethodGet, "/api/users/current", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = fx.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `test_auth_resolutions_total{outcome="anonymous"} 1`)
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := newTestServer(t)

	rec := fx.do(http.MethodGet, "/api/nowhere", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"errors":"Not Found"}`, rec.Body.String())
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	fx := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}
