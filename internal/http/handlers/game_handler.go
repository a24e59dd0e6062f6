package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// GameHandler handles HTTP requests for games and ticket purchases
type GameHandler struct {
	settlementUseCase domain.SettlementUseCase
	userUseCase       domain.UserUseCase
	gameRepo          domain.GameRepository
	ticketRepo        domain.TicketRepository
	paymentService    domain.PaymentService
	logger            *logger.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	settlementUseCase domain.SettlementUseCase,
	userUseCase domain.UserUseCase,
	gameRepo domain.GameRepository,
	ticketRepo domain.TicketRepository,
	paymentService domain.PaymentService,
	logger *logger.Logger,
) *GameHandler {
	return &GameHandler{
		settlementUseCase: settlementUseCase,
		userUseCase:       userUseCase,
		gameRepo:          gameRepo,
		ticketRepo:        ticketRepo,
		paymentService:    paymentService,
		logger:            logger,
	}
}

// QuoteTicketRequest represents the ticket quote request body
type QuoteTicketRequest struct {
	LottoNumbers []int `json:"lotto_numbers" binding:"required" example:"1,2,3,4,5"`
	PowerNumber  int   `json:"power_number" binding:"required" example:"6"`
}

// SubmitTicketRequest represents the ticket submission request body
type SubmitTicketRequest struct {
	TxID string `json:"txID" binding:"required" example:"4fd2…"`
}

// LottoPoolResponse carries the house wallet balance backing the prize pools
type LottoPoolResponse struct {
	Balance float64 `json:"balance" example:"812.5"`
}

// GameDetail is a game together with its resolved game type
type GameDetail struct {
	domain.Game
	GameType *domain.GameType `json:"game_type,omitempty"`
}

// TicketHistoryEntry is a purchased ticket merged with its win record
type TicketHistoryEntry struct {
	domain.Ticket
	WinAmount    float64 `json:"win_amount"`
	PrizeClaimed bool    `json:"prize_claimed"`
}

// GetLottoPool returns the balance of the app wallet that pays out winnings
// @Summary Get lotto pool
// @Description Return the house wallet balance backing the prize pools
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} LottoPoolResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /lotto/pool [get]
func (h *GameHandler) GetLottoPool(c *gin.Context) {
	if _, ok := getAuthenticatedUID(c); !ok {
		return
	}

	balance, err := h.paymentService.GetBalance()
	if err != nil {
		h.logger.Error("Failed to fetch house balance", zap.Error(err))
		respondError(c, domain.NewProviderUnavailableError("get balance", err))
		return
	}

	c.JSON(http.StatusOK, LottoPoolResponse{Balance: balance})
}

// ListGameTypes lists the configured game types
// @Summary List game types
// @Description List every configured game type
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.GameType
// @Failure 401 {object} domain.ErrorResponse
// @Router /lotto/game-types [get]
func (h *GameHandler) ListGameTypes(c *gin.Context) {
	if _, ok := getAuthenticatedUID(c); !ok {
		return
	}

	types, err := h.gameRepo.ListTypes()
	if err != nil {
		respondError(c, domain.NewPersistenceError("list game types", err))
		return
	}

	c.JSON(http.StatusOK, types)
}

// ListGames lists games, optionally filtered by game type name
// @Summary List games
// @Description List games, optionally filtered by game type
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param type query string false "Game type name"
// @Success 200 {array} domain.Game
// @Failure 401 {object} domain.ErrorResponse
// @Router /lotto/games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	if _, ok := getAuthenticatedUID(c); !ok {
		return
	}

	games, err := h.gameRepo.List(c.Query("type"))
	if err != nil {
		respondError(c, domain.NewPersistenceError("list games", err))
		return
	}

	c.JSON(http.StatusOK, games)
}

// GetGame returns a single game with its pool and resolved game type
// @Summary Get game
// @Description Return a game with its current pool amount and game type
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} GameDetail
// @Failure 404 {object} domain.ErrorResponse
// @Router /lotto/games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	if _, ok := getAuthenticatedUID(c); !ok {
		return
	}

	gameID, ok := h.gameIDParam(c)
	if !ok {
		return
	}

	game, err := h.gameRepo.GetByID(gameID)
	if err != nil {
		respondError(c, domain.NewPersistenceError("load game", err))
		return
	}
	if game == nil {
		respondError(c, domain.NewNotFoundError("Game"))
		return
	}

	gameType, err := h.gameRepo.GetTypeByID(game.GameTypeID)
	if err != nil {
		respondError(c, domain.NewPersistenceError("load game type", err))
		return
	}

	c.JSON(http.StatusOK, GameDetail{Game: *game, GameType: gameType})
}

// QuoteTicket prices and reserves a ticket purchase
// @Summary Quote ticket
// @Description Validate the played numbers, price the ticket and reserve it as a pending transaction
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param request body QuoteTicketRequest true "Played numbers"
// @Success 200 {object} domain.TicketQuote
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /lotto/games/{id}/quote [post]
func (h *GameHandler) QuoteTicket(c *gin.Context) {
	uid, ok := getAuthenticatedUID(c)
	if !ok {
		return
	}

	gameID, ok := h.gameIDParam(c)
	if !ok {
		return
	}

	var req QuoteTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewValidationError("lotto_numbers", "numbers and power number are required")))
		return
	}

	quote, err := h.settlementUseCase.QuoteTicket(uid, gameID, req.LottoNumbers, req.PowerNumber)
	if err != nil {
		h.logger.Error("Ticket quote failed",
			zap.String("uid", uid),
			zap.Uint("gameID", gameID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// SubmitTicket settles a previously quoted ticket reservation
// @Summary Submit ticket
// @Description Settle a quoted reservation: debit the balance and issue the ticket
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitTicketRequest true "Reservation reference"
// @Success 200 {object} domain.Ticket
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /lotto/tickets/submit [post]
func (h *GameHandler) SubmitTicket(c *gin.Context) {
	uid, ok := getAuthenticatedUID(c)
	if !ok {
		return
	}

	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewValidationError("txID", "reservation reference is required")))
		return
	}

	ticket, err := h.settlementUseCase.SubmitTicket(uid, req.TxID)
	if err != nil {
		h.logger.Error("Ticket submission failed",
			zap.String("uid", uid),
			zap.String("transactionID", req.TxID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// ListTickets lists the authenticated user's tickets with win records merged
// @Summary List my tickets
// @Description List every ticket purchased by the authenticated user, with win amount and prize status
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TicketHistoryEntry
// @Failure 401 {object} domain.ErrorResponse
// @Router /lotto/tickets [get]
func (h *GameHandler) ListTickets(c *gin.Context) {
	uid, ok := getAuthenticatedUID(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUserInfo(uid)
	if err != nil {
		respondError(c, err)
		return
	}

	tickets, err := h.ticketRepo.GetByUserID(user.ID)
	if err != nil {
		respondError(c, domain.NewPersistenceError("list tickets", err))
		return
	}

	history := make([]TicketHistoryEntry, 0, len(tickets))
	statsByGame := make(map[uint]*domain.LottoStats)
	for _, ticket := range tickets {
		stats, cached := statsByGame[ticket.GameID]
		if !cached {
			stats, err = h.ticketRepo.GetStats(user.ID, ticket.GameID)
			if err != nil {
				respondError(c, domain.NewPersistenceError("load ticket stats", err))
				return
			}
			statsByGame[ticket.GameID] = stats
		}
		entry := TicketHistoryEntry{Ticket: *ticket}
		if stats != nil {
			entry.WinAmount = stats.WinAmount
			entry.PrizeClaimed = stats.PrizeClaimed
		}
		history = append(history, entry)
	}

	c.JSON(http.StatusOK, history)
}

func (h *GameHandler) gameIDParam(c *gin.Context) (uint, bool) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewValidationError("id", "must be a numeric game id")))
		return 0, false
	}
	return uint(gameID), true
}
