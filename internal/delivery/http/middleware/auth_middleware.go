// Package middleware holds the echo middleware specific to the HTTP API.
package middleware

import (
	"log/slog"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/infra/metrics"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderAuthorization carries the raw token, without a scheme prefix.
const HeaderAuthorization = "Authorization"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	Collector *metrics.Collector
	Logger    *slog.Logger
}

// AuthMiddleware resolves the Authorization header to a user. It never rejects a
// request by itself; handlers that need identity call deliverycontext.MustCurrentUser.
type AuthMiddleware struct {
	userUC    usecase.UserUsecase
	collector *metrics.Collector
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		userUC:    params.UserUC,
		collector: params.Collector,
		logger:    params.Logger,
	}
}

// Resolve attaches the token holder to the request context when there is one.
// Unknown tokens leave the request anonymous; storage failures abort it.
func (m *AuthMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(HeaderAuthorization)
		if token == "" {
			m.record(metrics.AuthOutcomeAnonymous)

			return next(c)
		}

		ctx := c.Request().Context()
		user, err := m.userUC.ResolveToken(ctx, token)
		if err != nil {
			m.record(metrics.AuthOutcomeFailed)

			return err
		}
		if user == nil {
			m.record(metrics.AuthOutcomeRejected)

			return next(c)
		}

		m.record(metrics.AuthOutcomeAuthenticated)

		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("username", user.Username))
		ctx = deliverycontext.WithUser(ctx, user)
		ctx = deliverycontext.WithLogger(ctx, logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *AuthMiddleware) record(outcome string) {
	if m.collector != nil {
		m.collector.RecordAuthOutcome(outcome)
	}
}
