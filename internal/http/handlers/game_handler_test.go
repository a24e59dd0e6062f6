package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/domain/mocks"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

type gameHandlerMocks struct {
	userUseCase    *mocks.MockUserUseCase
	gameRepo       *mocks.MockGameRepository
	ticketRepo     *mocks.MockTicketRepository
	paymentService *mocks.MockPaymentService
}

func newTestGameHandler(ctrl *gomock.Controller) (*GameHandler, *gameHandlerMocks) {
	m := &gameHandlerMocks{
		userUseCase:    mocks.NewMockUserUseCase(ctrl),
		gameRepo:       mocks.NewMockGameRepository(ctrl),
		ticketRepo:     mocks.NewMockTicketRepository(ctrl),
		paymentService: mocks.NewMockPaymentService(ctrl),
	}
	handler := NewGameHandler(nil, m.userUseCase, m.gameRepo, m.ticketRepo, m.paymentService, logger.NewLogger("test", "debug"))
	return handler, m
}

func newAuthenticatedContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("uid", "pi_user_abc")
	return c, recorder
}

func TestGetLottoPool(t *testing.T) {
	t.Run("Returns_House_Balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handler, m := newTestGameHandler(ctrl)
		c, recorder := newAuthenticatedContext(t)

		m.paymentService.EXPECT().GetBalance().Return(812.5, nil)

		handler.GetLottoPool(c)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp LottoPoolResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, 812.5, resp.Balance)
	})

	t.Run("Provider_Failure_Is_Unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handler, m := newTestGameHandler(ctrl)
		c, recorder := newAuthenticatedContext(t)

		m.paymentService.EXPECT().GetBalance().Return(0.0, errors.New("connection refused"))

		handler.GetLottoPool(c)
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}

func TestListGameTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler, m := newTestGameHandler(ctrl)
	c, recorder := newAuthenticatedContext(t)

	m.gameRepo.EXPECT().ListTypes().Return([]*domain.GameType{
		{ID: 1, Name: "Pi-Lotto"},
		{ID: 2, Name: "Super-Pi-Lotto"},
	}, nil)

	handler.ListGameTypes(c)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var types []domain.GameType
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &types))
	assert.Len(t, types, 2)
	assert.Equal(t, "Super-Pi-Lotto", types[1].Name)
}

func TestGetGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler, m := newTestGameHandler(ctrl)
	c, recorder := newAuthenticatedContext(t)
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	m.gameRepo.EXPECT().GetByID(uint(7)).Return(&domain.Game{ID: 7, GameTypeID: 1, Name: "Weekly Draw", PoolAmount: 40.0}, nil)
	m.gameRepo.EXPECT().GetTypeByID(uint(1)).Return(&domain.GameType{ID: 1, Name: "Pi-Lotto"}, nil)

	handler.GetGame(c)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var detail GameDetail
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &detail))
	assert.Equal(t, uint(7), detail.ID)
	assert.Equal(t, "Pi-Lotto", detail.GameType.Name)
}

func TestListTickets(t *testing.T) {
	t.Run("Merges_Win_Records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handler, m := newTestGameHandler(ctrl)
		c, recorder := newAuthenticatedContext(t)

		m.userUseCase.EXPECT().GetUserInfo("pi_user_abc").Return(&domain.User{ID: 123, UID: "pi_user_abc"}, nil)
		m.ticketRepo.EXPECT().GetByUserID(uint(123)).Return([]*domain.Ticket{
			{ID: 41, UserID: 123, GameID: 7, NumbersPlayed: "4,8,15,16,23"},
			{ID: 42, UserID: 123, GameID: 9, NumbersPlayed: "1,2,3,4,5"},
		}, nil)
		m.ticketRepo.EXPECT().GetStats(uint(123), uint(7)).Return(&domain.LottoStats{
			ID: 77, UserID: 123, GameID: 7, WinAmount: 25.0, PrizeClaimed: true,
		}, nil)
		m.ticketRepo.EXPECT().GetStats(uint(123), uint(9)).Return(nil, nil)

		handler.ListTickets(c)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var history []TicketHistoryEntry
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &history))
		assert.Len(t, history, 2)
		assert.Equal(t, 25.0, history[0].WinAmount)
		assert.True(t, history[0].PrizeClaimed)
		assert.Zero(t, history[1].WinAmount)
		assert.False(t, history[1].PrizeClaimed)
	})

	t.Run("Unauthenticated_Rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handler, _ := newTestGameHandler(ctrl)

		gin.SetMode(gin.TestMode)
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		handler.ListTickets(c)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
