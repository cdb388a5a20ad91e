package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/handlers"
	"github.com/diegoclair/slack-greet-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	GreetServiceMock *mocks.MockGreetService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		GreetServiceMock: mocks.NewMockGreetService(ctrl),
	}

	handler = handlers.New(m.GreetServiceMock, SigningSecret, zap.NewNop())

	return
}

// CreateEventRequest creates a properly signed Slack Events API request
func CreateEventRequest(t *testing.T, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

// ReactionEventBody builds an event_callback payload for a reaction event.
func ReactionEventBody(eventType, user, reaction, itemUser, channel, ts string) string {
	return fmt.Sprintf(`{
		"token": "verification-token",
		"team_id": "T123",
		"api_app_id": "A123",
		"type": "event_callback",
		"event_id": "Ev123",
		"event_time": 1712273500,
		"event": {
			"type": %q,
			"user": %q,
			"reaction": %q,
			"item_user": %q,
			"item": {"type": "message", "channel": %q, "ts": %q},
			"event_ts": "1712273500.000200"
		}
	}`, eventType, user, reaction, itemUser, channel, ts)
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}
