package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/slack-greet-bot/internal/domain"
	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/diegoclair/slack-greet-bot/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Health(t *testing.T) {
	_, handler, _ := test.GetHandlerTest(t)

	for _, path := range []string{"/", "/healthz"} {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)

		handler.Routes().ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code, path)
		assert.NotEmpty(t, recorder.Body.String(), path)
	}
}

func TestHandler_Metrics(t *testing.T) {
	_, handler, _ := test.GetHandlerTest(t)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}

func TestHandler_Greet(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should return the posted start greeting",
			path: "/channel/C123/greet/start",
			buildMocks: func(m test.ServiceMocks) {
				m.GreetServiceMock.EXPECT().GreetStart(gomock.Any(), "C123").Return(&entity.PostResult{
					OK:        true,
					Channel:   "C123",
					Timestamp: "1712273400.000100",
					Text:      ":ohayou: 2024/04/05 (Fri)",
				}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

				var body map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, map[string]any{
					"ok":      true,
					"channel": "C123",
					"ts":      "1712273400.000100",
					"text":    ":ohayou: 2024/04/05 (Fri)",
				}, body)
			},
		},
		{
			name: "Should answer Holiday! without a message on holidays",
			path: "/channel/C123/greet/start",
			buildMocks: func(m test.ServiceMocks) {
				m.GreetServiceMock.EXPECT().GreetStart(gomock.Any(), "C123").
					Return(&entity.PostResult{OK: true, Holiday: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Equal(t, "Holiday!", recorder.Body.String())
			},
		},
		{
			name: "Should route the end greeting",
			path: "/channel/C999/greet/end",
			buildMocks: func(m test.ServiceMocks) {
				m.GreetServiceMock.EXPECT().GreetEnd(gomock.Any(), "C999").
					Return(&entity.PostResult{OK: true, Holiday: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Equal(t, "Holiday!", recorder.Body.String())
			},
		},
		{
			name: "Should return 500 with the error message",
			path: "/channel/C123/greet/end",
			buildMocks: func(m test.ServiceMocks) {
				m.GreetServiceMock.EXPECT().GreetEnd(gomock.Any(), "C123").
					Return(nil, errors.New("channel_not_found")).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.Contains(t, recorder.Body.String(), "channel_not_found")
			},
		},
		{
			name: "Should return 500 for invalid params",
			path: "/channel/%20/greet/start",
			buildMocks: func(m test.ServiceMocks) {
				m.GreetServiceMock.EXPECT().GreetStart(gomock.Any(), " ").
					Return(nil, domain.ErrInvalidParams).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.Contains(t, recorder.Body.String(), domain.ErrInvalidParams.Error())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			handler.Routes().ServeHTTP(recorder, req)

			tt.checkResponse(t, recorder)
		})
	}
}

func TestHandler_Greet_MethodNotAllowed(t *testing.T) {
	_, handler, _ := test.GetHandlerTest(t)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/channel/C123/greet/start", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
