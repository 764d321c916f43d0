package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/dicesim/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/dicesim/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/dicesim/internal/dice/mocks"
	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/repositories/history"
	historyMocks "github.com/KirkDiggler/dicesim/internal/repositories/history/mocks"
	"github.com/KirkDiggler/dicesim/internal/services/roller"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type APITestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	httpServer     *httptest.Server

	testTime time.Time
}

func (s *APITestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-roll-id").AnyTimes()

	repo, err := history.NewMemory(&history.MemoryConfig{})
	s.Require().NoError(err)

	s.httpServer = httptest.NewServer(s.newServer(repo).Handler())
}

func (s *APITestSuite) TearDownTest() {
	s.httpServer.Close()
	s.mockCtrl.Finish()
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) newServer(repo history.Repository) *Server {
	svc, err := roller.New(&roller.Config{
		HistoryRepo:   repo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	server, err := New(&Config{
		Addr:          "127.0.0.1:0",
		RollerService: svc,
	})
	s.Require().NoError(err)
	return server
}

func (s *APITestSuite) post(path, body string) (*http.Response, []byte) {
	resp, err := http.Post(s.httpServer.URL+path, "application/json", strings.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, raw
}

func (s *APITestSuite) get(path string) (*http.Response, []byte) {
	resp, err := http.Get(s.httpServer.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, raw
}

func (s *APITestSuite) roll(body string, sides int, values ...int) rollResponse {
	for _, v := range values {
		s.mockDiceRoller.EXPECT().Roll(sides).Return(v)
	}

	resp, raw := s.post("/api/roll", body)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(raw))
	s.Equal("application/json", resp.Header.Get("Content-Type"))

	var out rollResponse
	s.Require().NoError(json.Unmarshal(raw, &out))
	return out
}

func (s *APITestSuite) assertError(resp *http.Response, raw []byte, status int, message string) {
	s.Equal(status, resp.StatusCode)

	var out errorResponse
	s.Require().NoError(json.Unmarshal(raw, &out))
	s.False(out.Success)
	s.Equal(message, out.Error)
}

func (s *APITestSuite) TestRollDefaults() {
	out := s.roll(`{}`, 6, 4)

	s.True(out.Success)
	s.Equal(&models.Roll{
		ID:       "test-roll-id",
		Dice:     1,
		Sides:    6,
		Results:  []int{4},
		Total:    4,
		RolledAt: s.testTime,
	}, out.Result)
	s.Equal(&models.Statistics{
		TotalRolls:  1,
		Average:     4,
		Min:         4,
		Max:         4,
		RecentRolls: 1,
	}, out.Statistics)
}

func (s *APITestSuite) TestRollWireFormat() {
	s.mockDiceRoller.EXPECT().Roll(6).Return(4)

	_, raw := s.post("/api/roll", `{"num_dice": 1, "num_sides": 6}`)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(raw, &body))
	s.Equal(true, body["success"])

	result := body["result"].(map[string]any)
	s.Equal(float64(1), result["dice"])
	s.Equal(float64(6), result["sides"])
	s.Equal([]any{float64(4)}, result["results"])
	s.Equal(float64(4), result["total"])

	statistics := body["statistics"].(map[string]any)
	for _, key := range []string{"total_rolls", "average", "min", "max", "recent_rolls"} {
		s.Contains(statistics, key)
	}
}

func (s *APITestSuite) TestRollMultipleDice() {
	out := s.roll(`{"num_dice": 3, "num_sides": 8}`, 8, 3, 5, 8)

	s.Equal([]int{3, 5, 8}, out.Result.Results)
	s.Equal(16, out.Result.Total)
	s.Equal(3, out.Statistics.TotalRolls)
}

func (s *APITestSuite) TestRollCoercesValues() {
	out := s.roll(`{"num_dice": "2", "num_sides": 10.9}`, 10, 1, 2)

	s.Equal(2, out.Result.Dice)
	s.Equal(10, out.Result.Sides)
}

func (s *APITestSuite) TestRollOutOfRange() {
	tests := []struct {
		body    string
		message string
	}{
		{`{"num_dice": 0}`, "Number of dice must be between 1 and 10"},
		{`{"num_dice": 11}`, "Number of dice must be between 1 and 10"},
		{`{"num_dice": -3}`, "Number of dice must be between 1 and 10"},
		{`{"num_dice": 1e12}`, "Number of dice must be between 1 and 10"},
		{`{"num_sides": 1}`, "Number of sides must be between 2 and 100"},
		{`{"num_sides": 101}`, "Number of sides must be between 2 and 100"},
		{`{"num_dice": 0, "num_sides": 0}`, "Number of dice must be between 1 and 10"},
	}

	for _, tt := range tests {
		resp, raw := s.post("/api/roll", tt.body)
		s.assertError(resp, raw, http.StatusBadRequest, tt.message)
	}

	// Nothing was recorded
	_, raw := s.get("/api/history")
	s.JSONEq(`{"success": true, "history": [], "statistics": null}`, string(raw))
}

func (s *APITestSuite) TestRollMalformed() {
	for _, body := range []string{
		``,
		`not json`,
		`null`,
		`[1, 2]`,
		`{"num_dice": "three"}`,
		`{"num_dice": true}`,
		`{"num_sides": [6]}`,
	} {
		resp, raw := s.post("/api/roll", body)
		s.assertError(resp, raw, http.StatusInternalServerError, msgUnexpected)
	}
}

func (s *APITestSuite) TestRollWrongMethod() {
	resp, _ := s.get("/api/roll")
	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}

func (s *APITestSuite) TestHistoryEmpty() {
	resp, raw := s.get("/api/history")

	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"success": true, "history": [], "statistics": null}`, string(raw))
}

func (s *APITestSuite) TestHistoryReturnsLastTen() {
	for i := 1; i <= 12; i++ {
		s.roll(`{"num_sides": 20}`, 20, i)
	}

	resp, raw := s.get("/api/history")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var out historyResponse
	s.Require().NoError(json.Unmarshal(raw, &out))
	s.True(out.Success)
	s.Require().Len(out.History, 10)
	s.Equal([]int{3}, out.History[0].Results)
	s.Equal([]int{12}, out.History[9].Results)

	// Statistics describe all twelve retained rolls
	s.Equal(12, out.Statistics.RecentRolls)
	s.Equal(1, out.Statistics.Min)
	s.Equal(6.5, out.Statistics.Average)
}

func (s *APITestSuite) TestClear() {
	s.roll(`{}`, 6, 2)

	resp, raw := s.post("/api/clear", ``)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"success": true, "message": "History cleared"}`, string(raw))

	_, raw = s.get("/api/history")
	s.JSONEq(`{"success": true, "history": [], "statistics": null}`, string(raw))
}

func (s *APITestSuite) TestRepositoryFailureIsHidden() {
	repo := historyMocks.NewMockRepository(s.mockCtrl)
	repo.EXPECT().AppendRoll(gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))
	repo.EXPECT().GetRecentRolls(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis: connection refused"))
	repo.EXPECT().ClearRolls(gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))
	s.mockDiceRoller.EXPECT().Roll(6).Return(1)

	server := httptest.NewServer(s.newServer(repo).Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/roll", "application/json", strings.NewReader(`{}`))
	s.Require().NoError(err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.assertError(resp, raw, http.StatusInternalServerError, msgUnexpected)
	s.NotContains(string(raw), "redis")

	resp, err = http.Get(server.URL + "/api/history")
	s.Require().NoError(err)
	raw, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	s.assertError(resp, raw, http.StatusInternalServerError, msgUnexpected)

	resp, err = http.Post(server.URL+"/api/clear", "application/json", nil)
	s.Require().NoError(err)
	raw, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	s.assertError(resp, raw, http.StatusInternalServerError, msgUnexpected)
}

func (s *APITestSuite) TestPanicBecomesGenericError() {
	s.mockDiceRoller.EXPECT().Roll(6).DoAndReturn(func(int) int {
		panic("boom")
	})

	resp, raw := s.post("/api/roll", `{}`)
	s.assertError(resp, raw, http.StatusInternalServerError, msgUnexpected)
}

func (s *APITestSuite) TestIndexPage() {
	resp, raw := s.get("/")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Type"), "text/html")
	s.Contains(string(raw), "/api/roll")

	resp, _ = s.get("/missing")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *APITestSuite) TestHealth() {
	resp, raw := s.get("/healthz")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"status": "ok"}`, string(raw))
}

func (s *APITestSuite) TestStartAndStop() {
	repo, err := history.NewMemory(nil)
	s.Require().NoError(err)
	server := s.newServer(repo)

	s.Require().NoError(server.Start())

	resp, err := http.Get("http://" + server.Addr() + "/healthz")
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Require().NoError(server.Stop(ctx))
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("expected error for nil config")
	}

	_, err = New(&Config{})
	if err == nil {
		t.Fatal("expected error for missing roller service")
	}
}
