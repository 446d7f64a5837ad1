package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gittales/pkg/controller/server"
	"github.com/m-mizutani/gittales/pkg/domain/mock"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func newMockServer(t *testing.T, uc *mock.UseCaseMock, options ...server.Option) *server.Server {
	t.Helper()
	options = append([]server.Option{server.WithWebhookSecret(testSecret)}, options...)
	return gt.R1(server.New(uc, options...)).NoError(t)
}

func TestMiddleware(t *testing.T) {
	t.Run("request ID and logger are set to context", func(t *testing.T) {
		var captured context.Context
		srv := newMockServer(t, &mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			captured = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		gt.V(t, logging.From(captured) == logging.From(context.Background())).Equal(false)
		id1, _ := logging.CtxRequestID(captured)
		id2, _ := logging.CtxRequestID(captured)
		gt.V(t, id1).Equal(id2)
	})

	t.Run("status code is passed through", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
			srv := newMockServer(t, &mock.UseCaseMock{})
			mux := srv.Mux()
			mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			gt.V(t, w.Code).Equal(code)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	uc := &mock.UseCaseMock{
		VerifyAccessTokenFunc: func(ctx context.Context, token string) (*model.TokenPayload, error) {
			switch token {
			case "good":
				return &model.TokenPayload{UserID: 1, Email: "a@example.com"}, nil
			case "old":
				return nil, types.ErrTokenExpired
			default:
				return nil, types.ErrTokenInvalid
			}
		},
		ListRepositoriesFunc: func(ctx context.Context) ([]*model.Repository, error) {
			return nil, nil
		},
	}
	srv := newMockServer(t, uc)

	testCases := map[string]struct {
		header string
		status int
		code   string
	}{
		"valid token":       {header: "Bearer good", status: http.StatusOK},
		"lower case scheme": {header: "bearer good", status: http.StatusOK},
		"no header":         {header: "", status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		"basic auth":        {header: "Basic Zm9vOmJhcg==", status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		"empty bearer":      {header: "Bearer ", status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		"expired token":     {header: "Bearer old", status: http.StatusUnauthorized, code: "ACCESS_TOKEN_EXPIRED"},
		"invalid token":     {header: "Bearer broken", status: http.StatusUnauthorized, code: "INVALID_ACCESS_TOKEN"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/repos", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			srv.Mux().ServeHTTP(w, req)

			gt.V(t, w.Code).Equal(tc.status)
			if tc.code != "" {
				resp := decodeError(t, w)
				gt.V(t, resp.Code).Equal(tc.code)
				gt.V(t, resp.StatusCode).Equal(tc.status)
			}
		})
	}
}
