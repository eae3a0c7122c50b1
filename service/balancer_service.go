package service

import (
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"bank-admin-api/repository"
	"context"
	crand "crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrInvalidArgument marks rejected generation parameters. The wrapped
// message names the violated constraint.
var ErrInvalidArgument = errors.New("invalid argument")

// GenerateParams holds the knobs for one balancing run. StartTime is the raw
// request value; empty means 30 days before now.
type GenerateParams struct {
	MinCount     int
	MaxAmount    float64
	MinSentCount int
	StartTime    string
}

// minTxAmount is the smallest amount a generated row may carry.
const minTxAmount = 0.01

// BalancerService synthesizes signed transactions that drive the recorded
// ledger sum to the account's balance field. All generated rows are persisted
// in a single commit.
type BalancerService struct {
	db          *sql.DB
	accountRepo repository.IAccountRepository
	txRepo      repository.ITransactionRepository
	cache       *DashboardCache
	now         func() time.Time
}

func NewBalancerService(db *sql.DB, accountRepo repository.IAccountRepository, txRepo repository.ITransactionRepository, cache *DashboardCache) *BalancerService {
	return &BalancerService{
		db:          db,
		accountRepo: accountRepo,
		txRepo:      txRepo,
		cache:       cache,
		now:         time.Now,
	}
}

// netLedgerBalance sums the existing ledger the way the balancer accounts for
// it: received amounts are added, sent amounts are added as the negative
// values they are stored as. Fee rows are intentionally excluded here even
// though other parts of the system may treat them as balance-affecting; the
// asymmetry is inherited behavior and kept on purpose.
func netLedgerBalance(transactions []*model.Transaction) float64 {
	var balance float64
	for _, t := range transactions {
		switch t.TxType {
		case model.TxTypeReceived, model.TxTypeSent:
			balance += t.Amount
		}
	}
	return balance
}

func validateParams(p GenerateParams) error {
	if p.MinCount < 1 {
		return fmt.Errorf("%w: min_count must be at least 1", ErrInvalidArgument)
	}
	if p.MaxAmount <= 0 {
		return fmt.Errorf("%w: max_amount must be greater than 0", ErrInvalidArgument)
	}
	if p.MinSentCount < 0 {
		return fmt.Errorf("%w: min_sent_count must be non-negative", ErrInvalidArgument)
	}
	if p.MinSentCount > p.MinCount {
		return fmt.Errorf("%w: min_sent_count cannot be greater than min_count", ErrInvalidArgument)
	}
	return nil
}

// resolveStartTime parses the optional start of the timestamp window at
// minute precision and rejects values later than now.
func (s *BalancerService) resolveStartTime(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return now.AddDate(0, 0, -30), nil
	}

	start, err := time.ParseInLocation("2006-01-02T15:04", truncateMinutePrecision(raw), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start_time is not a valid timestamp: %v", ErrInvalidArgument, err)
	}
	if start.After(now) {
		return time.Time{}, fmt.Errorf("%w: start_time cannot be later than the current time", ErrInvalidArgument)
	}
	return start, nil
}

func truncateMinutePrecision(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > 16 {
		trimmed = trimmed[:16]
	}
	return trimmed
}

// Generate runs the balancing algorithm and persists the resulting rows in
// one commit. A target already within a cent of the ledger sum is a no-op.
func (s *BalancerService) Generate(ctx context.Context, params GenerateParams) (*model.GenerateResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	now := s.now()
	start, err := s.resolveStartTime(params.StartTime, now)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.Get()
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	existing, err := s.txRepo.List()
	if err != nil {
		return nil, err
	}

	actualBalance := netLedgerBalance(existing)
	difference := account.Balance - actualBalance

	log := logger.Log.WithFields(logrus.Fields{
		"target_balance": account.Balance,
		"actual_balance": actualBalance,
		"difference":     difference,
		"min_count":      params.MinCount,
		"max_amount":     params.MaxAmount,
		"min_sent_count": params.MinSentCount,
	})
	log.Info("Starting ledger balancing run")

	if math.Abs(difference) < minTxAmount {
		return &model.GenerateResult{Message: "Balance already matches target", Generated: 0}, nil
	}

	var receivedAmounts, sentAmounts []float64
	totalAmount := math.Abs(difference)

	if difference > 0 {
		// Net inflow needed: seed the requested number of small outflows
		// first, then cover the difference plus those outflows with
		// received rows.
		var sentTotal float64
		for i := 0; i < params.MinSentCount; i++ {
			amount := round2(uniform(minTxAmount, math.Min(params.MaxAmount, totalAmount*0.3)))
			sentAmounts = append(sentAmounts, amount)
			sentTotal += amount
		}

		receivedCount := params.MinCount - params.MinSentCount
		if receivedCount < 1 {
			receivedCount = 1
		}
		receivedAmounts = splitAmounts(totalAmount+sentTotal, params.MaxAmount, receivedCount)
	} else {
		// Net outflow needed: the mirror procedure, entirely with sent rows.
		sentCount := params.MinCount
		if params.MinSentCount > sentCount {
			sentCount = params.MinSentCount
		}
		sentAmounts = splitAmounts(totalAmount, params.MaxAmount, sentCount)
	}

	generated := make([]*model.Transaction, 0, len(receivedAmounts)+len(sentAmounts))
	for _, amount := range receivedAmounts {
		generated = append(generated, s.buildTransaction(model.TxTypeReceived, amount, account.Currency, start, now))
	}
	for _, amount := range sentAmounts {
		// Sent rows are stored with negative amounts by convention.
		generated = append(generated, s.buildTransaction(model.TxTypeSent, -amount, account.Currency, start, now))
	}

	sort.Slice(generated, func(i, j int) bool {
		return generated[i].CreatedAt.Before(generated[j].CreatedAt)
	})

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.txRepo.CreateBatch(tx, generated); err != nil {
		return nil, fmt.Errorf("could not persist generated transactions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit generated transactions: %w", err)
	}

	s.cache.Invalidate(ctx)

	result := &model.GenerateResult{
		Message:       fmt.Sprintf("Generated %d transactions", len(generated)),
		Generated:     len(generated),
		ReceivedCount: len(receivedAmounts),
		SentCount:     len(sentAmounts),
		TotalReceived: round2(sum(receivedAmounts)),
		TotalSent:     round2(sum(sentAmounts)),
	}

	log.WithFields(logrus.Fields{
		"generated":      result.Generated,
		"received_count": result.ReceivedCount,
		"sent_count":     result.SentCount,
	}).Info("Ledger balancing run completed")

	return result, nil
}

// splitAmounts breaks total into at least targetCount pieces no larger than
// maxAmount. Each draw reserves a cent for every piece still owed so the
// count target stays reachable; whatever the draws leave over is chunked, and
// a final sub-cent remainder is folded into the last piece when that does not
// push it past maxAmount. The running remainder is tracked exactly so the
// pieces always sum back to total.
func splitAmounts(total, maxAmount float64, targetCount int) []float64 {
	var amounts []float64

	minTx := decimal.NewFromFloat(minTxAmount)
	maxDec := decimal.NewFromFloat(maxAmount)
	remaining := decimal.NewFromFloat(total)

	for remaining.GreaterThanOrEqual(minTx) && len(amounts) < targetCount {
		stillNeeded := targetCount - len(amounts)
		if stillNeeded < 1 {
			stillNeeded = 1
		}

		reserve := minTx.Mul(decimal.NewFromInt(int64(stillNeeded - 1)))
		maxThis := decimal.Min(maxDec, remaining.Sub(reserve))
		if maxThis.LessThan(minTx) {
			maxThis = decimal.Min(maxDec, remaining)
		}

		amount := decimal.NewFromFloat(round2(uniform(minTxAmount, maxThis.InexactFloat64())))
		if amount.GreaterThan(remaining) {
			amount = remaining
		}

		amounts = append(amounts, amount.InexactFloat64())
		remaining = remaining.Sub(amount)
	}

	// The count target is met but the total is not exhausted yet.
	for remaining.GreaterThan(minTx) {
		if remaining.LessThanOrEqual(maxDec) {
			amounts = append(amounts, round2(remaining.InexactFloat64()))
			remaining = decimal.Zero
		} else {
			amount := decimal.NewFromFloat(round2(uniform(maxAmount*0.5, maxAmount)))
			amounts = append(amounts, amount.InexactFloat64())
			remaining = remaining.Sub(amount)
		}
	}

	// Fold a leftover too small for its own row into the last one.
	if remaining.GreaterThan(decimal.Zero) && len(amounts) > 0 {
		last := decimal.NewFromFloat(amounts[len(amounts)-1])
		if last.Add(remaining).LessThanOrEqual(maxDec) {
			amounts[len(amounts)-1] = round2(last.Add(remaining).InexactFloat64())
		} else {
			amounts = append(amounts, round2(remaining.InexactFloat64()))
		}
	}

	return amounts
}

func (s *BalancerService) buildTransaction(txType string, amount float64, currency string, start, now time.Time) *model.Transaction {
	txTime := randomTimestamp(start, now)

	description := "Received"
	if txType == model.TxTypeSent {
		description = "Sent"
	}

	return &model.Transaction{
		TxType:       txType,
		Amount:       amount,
		Currency:     currency,
		Counterparty: randomCounterparty(),
		Date:         txTime.Format("02 Jan - 03:04 PM"),
		Description:  description,
		CreatedAt:    txTime,
	}
}

// randomTimestamp draws a uniform instant in [start, now], truncated to whole
// minutes.
func randomTimestamp(start, now time.Time) time.Time {
	window := now.Sub(start)
	if window <= 0 {
		return now.Truncate(time.Minute)
	}
	// Sub saturates at MaxInt64 when start is centuries in the past; cap
	// the window so the +1 below cannot overflow into a negative bound.
	if window == math.MaxInt64 {
		window--
	}
	offset := time.Duration(rand.Int63n(int64(window) + 1))
	return start.Add(offset).Truncate(time.Minute)
}

const (
	counterpartyLetters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	counterpartyDigits   = "0123456789"
	counterpartyAlphanum = counterpartyLetters + counterpartyDigits
)

// randomCounterparty builds a blockchain-address-looking display token:
// "T" plus four random uppercase letters, an ellipsis, then a shuffled
// four-character suffix guaranteed to hold at least one letter and one digit.
func randomCounterparty() string {
	prefix := []byte{'T'}
	for i := 0; i < 4; i++ {
		prefix = append(prefix, counterpartyLetters[secureIntn(len(counterpartyLetters))])
	}

	suffix := []byte{
		counterpartyLetters[secureIntn(len(counterpartyLetters))],
		counterpartyDigits[secureIntn(len(counterpartyDigits))],
		counterpartyAlphanum[secureIntn(len(counterpartyAlphanum))],
		counterpartyAlphanum[secureIntn(len(counterpartyAlphanum))],
	}
	for i := len(suffix) - 1; i > 0; i-- {
		j := secureIntn(i + 1)
		suffix[i], suffix[j] = suffix[j], suffix[i]
	}

	return string(prefix) + "..." + string(suffix)
}

func secureIntn(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// fall back to the math/rand source used for amounts.
		return rand.Intn(n)
	}
	return int(v.Int64())
}

func uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rand.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
