package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pboachie/pi-lotto/internal/domain"
	"go.uber.org/zap"
)

const mainNumberCount = 5

var defaultNumberRange = domain.NumberRange{Main: [2]int{1, 50}, Power: [2]int{1, 20}}

// ticketPayload is the quote state stored as TransactionData between
// QuoteTicket and SubmitTicket.
type ticketPayload struct {
	GameID       uint    `json:"game_id"`
	TicketPrice  float64 `json:"ticket_price"`
	BaseFee      float64 `json:"base_fee"`
	ServiceFee   float64 `json:"service_fee"`
	LottoNumbers []int   `json:"lotto_numbers"`
	PowerNumber  int     `json:"power_number"`
}

// QuoteTicket prices a ticket, validates the played numbers and reserves
// the purchase as a pending lotto_entry transaction. The balance stays
// untouched until SubmitTicket settles the reservation; abandoned quotes
// are swept by the stale-expiry job.
func (u *settlementUseCase) QuoteTicket(uid string, gameID uint, numbers []int, powerNumber int) (*domain.TicketQuote, error) {
	u.logger.Info("Quoting ticket",
		zap.String("uid", uid),
		zap.Uint("gameID", gameID))

	user, err := u.requireUser(uid)
	if err != nil {
		return nil, err
	}

	game, cfg, err := u.requireActiveGame(gameID)
	if err != nil {
		return nil, err
	}

	if err := validateNumbers(numbers, powerNumber, cfg.numberRange); err != nil {
		return nil, err
	}

	quote := domain.TicketQuote{
		GameID:      gameID,
		TicketPrice: game.EntryFee,
		BaseFee:     u.cfg.Lotto.NetworkFee,
		ServiceFee:  cfg.serviceFee,
	}
	quote.Numbers.LottoNumbers = numbers
	quote.Numbers.PowerNumber = powerNumber

	if user.Balance < quote.TotalCost() {
		return nil, domain.NewInsufficientFundsError(
			fmt.Sprintf("Ticket costs %g, balance is %g", quote.TotalCost(), user.Balance))
	}

	transaction, err := u.engine.Create(domain.CreateTransactionInput{
		UserID:          user.ID,
		Amount:          quote.TotalCost(),
		TransactionType: domain.TransactionTypeLottoEntry,
		Memo:            fmt.Sprintf("Lotto entry for game %d", gameID),
		Payload: map[string]interface{}{
			"game_id":       gameID,
			"ticket_price":  quote.TicketPrice,
			"base_fee":      quote.BaseFee,
			"service_fee":   quote.ServiceFee,
			"lotto_numbers": numbers,
			"power_number":  powerNumber,
		},
	})
	if err != nil {
		return nil, err
	}

	quote.TxID = transaction.ID
	u.logger.Info("Ticket quoted",
		zap.String("uid", uid),
		zap.Uint("gameID", gameID),
		zap.String("transactionID", transaction.ID),
		zap.Float64("totalCost", quote.TotalCost()))
	return &quote, nil
}

// SubmitTicket settles a previously quoted reservation: it re-validates
// game state, capacity, numbers and balance under the per-user lock,
// inserts the ticket and its stats row, then completes the debit. If the
// completion fails the ticket rows are compensated away so no ticket ever
// exists without a completed debit.
func (u *settlementUseCase) SubmitTicket(uid string, txID string) (*domain.Ticket, error) {
	u.logger.Info("Submitting ticket",
		zap.String("uid", uid),
		zap.String("transactionID", txID))

	if err := u.lockManager.Lock(context.Background(), uid); err != nil {
		return nil, domain.NewInternalError("Could not acquire user lock", err)
	}
	defer u.lockManager.Unlock(uid)

	user, err := u.requireUser(uid)
	if err != nil {
		return nil, err
	}

	transaction, err := u.requireOwnedTransaction(txID, user.ID)
	if err != nil {
		return nil, err
	}
	if transaction.Status == domain.TransactionStatusCompleted {
		// Replay of a settled purchase: hand back the ticket issued the
		// first time instead of failing the submit.
		existing, err := u.ticketRepo.GetByTransactionID(txID)
		if err != nil {
			return nil, domain.NewPersistenceError("load issued ticket", err)
		}
		if existing != nil {
			u.logger.Warn("Ticket submission replayed, returning issued ticket",
				zap.String("transactionID", txID))
			return existing, nil
		}
	}
	if transaction.Status != domain.TransactionStatusPending {
		return nil, domain.NewInvalidStateError(
			"Ticket reservation is " + string(transaction.Status) + ", expected pending")
	}
	if transaction.TransactionType != domain.TransactionTypeLottoEntry {
		return nil, domain.NewInvalidTransactionTypeError(string(transaction.TransactionType))
	}

	payload, err := u.loadTicketPayload(txID)
	if err != nil {
		return nil, err
	}

	game, cfg, err := u.requireActiveGame(payload.GameID)
	if err != nil {
		return nil, err
	}

	if cfg.maxPlayers > 0 {
		count, err := u.ticketRepo.CountByGameID(game.ID)
		if err != nil {
			return nil, domain.NewPersistenceError("count game tickets", err)
		}
		if count >= int64(cfg.maxPlayers) {
			return nil, domain.NewGameFullError()
		}
	}

	if err := validateNumbers(payload.LottoNumbers, payload.PowerNumber, cfg.numberRange); err != nil {
		return nil, err
	}

	if user.Balance < transaction.Amount {
		return nil, domain.NewInsufficientFundsError("")
	}

	ticket := &domain.Ticket{
		UserID:        user.ID,
		GameID:        game.ID,
		TransactionID: txID,
		NumbersPlayed: joinNumbers(payload.LottoNumbers),
		PowerNumber:   payload.PowerNumber,
		DatePurchased: time.Now(),
	}
	if err := u.ticketRepo.Create(ticket); err != nil {
		return nil, domain.NewPersistenceError("create ticket", err)
	}

	stats := &domain.LottoStats{
		UserID:        user.ID,
		GameID:        game.ID,
		NumbersPlayed: ticket.NumbersPlayed,
	}
	if err := u.ticketRepo.CreateStats(stats); err != nil {
		u.compensateTicket(ticket)
		return nil, domain.NewPersistenceError("create lotto stats", err)
	}

	if _, err := u.engine.Complete(txID, "internal:"+txID); err != nil {
		if domain.IsAlreadySettled(err) {
			return ticket, nil
		}
		u.logger.Error("Ticket debit failed, compensating ticket rows",
			zap.String("transactionID", txID),
			zap.Uint("ticketID", ticket.ID),
			zap.Error(err))
		u.compensateStats(stats)
		u.compensateTicket(ticket)
		return nil, err
	}

	u.logger.Info("Ticket purchased",
		zap.String("uid", uid),
		zap.Uint("gameID", game.ID),
		zap.Uint("ticketID", ticket.ID),
		zap.String("transactionID", txID))
	return ticket, nil
}

func (u *settlementUseCase) compensateTicket(ticket *domain.Ticket) {
	if err := u.ticketRepo.Delete(ticket.ID); err != nil {
		u.logger.Error("Ticket compensation failed",
			zap.Uint("ticketID", ticket.ID),
			zap.Error(err))
	}
}

// compensateStats removes only the row inserted by this purchase; stats from
// the user's earlier tickets in the same game must survive compensation.
func (u *settlementUseCase) compensateStats(stats *domain.LottoStats) {
	if err := u.ticketRepo.DeleteStats(stats.ID); err != nil {
		u.logger.Error("Stats compensation failed",
			zap.Uint("statsID", stats.ID),
			zap.Error(err))
	}
}

func (u *settlementUseCase) loadTicketPayload(txID string) (*ticketPayload, error) {
	data, err := u.transactionRepo.GetData(txID)
	if err != nil {
		return nil, domain.NewPersistenceError("load ticket reservation data", err)
	}
	if data == nil {
		return nil, domain.NewNotFoundError("Ticket reservation data")
	}
	var payload ticketPayload
	if err := json.Unmarshal(data.Data, &payload); err != nil {
		return nil, domain.NewInternalError("Corrupt ticket reservation data", err)
	}
	return &payload, nil
}

// gameSettings is the parsed view of a game's GameConfig rows
type gameSettings struct {
	serviceFee  float64
	maxPlayers  int
	numberRange domain.NumberRange
}

func (u *settlementUseCase) requireActiveGame(gameID uint) (*domain.Game, *gameSettings, error) {
	game, err := u.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, nil, domain.NewPersistenceError("load game", err)
	}
	if game == nil {
		return nil, nil, domain.NewNotFoundError("Game")
	}
	if game.Status != domain.GameStatusActive || !game.EndTime.After(time.Now()) {
		return nil, nil, domain.NewGameNotActiveError()
	}

	configs, err := u.gameRepo.GetConfigs(gameID)
	if err != nil {
		return nil, nil, domain.NewPersistenceError("load game configs", err)
	}

	settings := &gameSettings{
		maxPlayers:  game.MaxPlayers,
		numberRange: defaultNumberRange,
	}
	if raw, ok := configs[domain.ConfigKeyServiceFee]; ok {
		if fee, err := strconv.ParseFloat(raw, 64); err == nil {
			settings.serviceFee = fee
		}
	}
	if raw, ok := configs[domain.ConfigKeyMaxPlayers]; ok {
		if max, err := strconv.Atoi(raw); err == nil {
			settings.maxPlayers = max
		}
	}
	if raw, ok := configs[domain.ConfigKeyNumberRange]; ok {
		var rng domain.NumberRange
		if err := json.Unmarshal([]byte(raw), &rng); err == nil {
			settings.numberRange = rng
		}
	}
	return game, settings, nil
}

// validateNumbers enforces the ticket format: exactly five distinct main
// numbers inside the main range and one power number inside the power
// range.
func validateNumbers(numbers []int, powerNumber int, rng domain.NumberRange) error {
	if len(numbers) != mainNumberCount {
		return domain.NewInvalidNumbersError(
			fmt.Sprintf("Exactly %d numbers must be played", mainNumberCount))
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < rng.Main[0] || n > rng.Main[1] {
			return domain.NewInvalidNumbersError(
				fmt.Sprintf("Number %d outside range [%d, %d]", n, rng.Main[0], rng.Main[1]))
		}
		if seen[n] {
			return domain.NewInvalidNumbersError(fmt.Sprintf("Number %d played twice", n))
		}
		seen[n] = true
	}
	if powerNumber < rng.Power[0] || powerNumber > rng.Power[1] {
		return domain.NewInvalidNumbersError(
			fmt.Sprintf("Power number %d outside range [%d, %d]", powerNumber, rng.Power[0], rng.Power[1]))
	}
	return nil
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
