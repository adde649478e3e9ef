package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
	"go.uber.org/zap"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/config"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
	domainerrors "github.com/RozoAI/rozo-app-backend-sub000/internal/domain/errors"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/repositories"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/logger"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/metrics"
)

// WebhookPayload is the processor callback body
type WebhookPayload struct {
	Event   string `json:"event"`
	Payment struct {
		ID       string `json:"id"`
		Metadata struct {
			Number string `json:"orderNumber"`
		} `json:"metadata"`
		Source struct {
			TxnHash      string `json:"txnHash"`
			ChainName    string `json:"chainName"`
			TokenAddress string `json:"tokenAddress"`
			TokenAmount  string `json:"tokenAmount"`
		} `json:"source"`
		Destination struct {
			Address     string `json:"destinationAddress"`
			ChainID     string `json:"chainId"`
			TokenSymbol string `json:"tokenSymbol"`
			AmountUnits string `json:"amountUnits"`
		} `json:"destination"`
	} `json:"payment"`
}

// WebhookResult reports how a processor callback was handled
type WebhookResult struct {
	Outcome repositories.TransitionOutcome `json:"outcome"`
	Kind    entities.RecordKind            `json:"kind"`
	Number  string                         `json:"number"`
	Status  entities.RecordStatus          `json:"status"`
}

// WebhookUsecase is the webhook ingestor: it parses the processor callback,
// locates the matching order or deposit and delegates the status change to
// the repository's transition authority. It never mutates status itself.
type WebhookUsecase struct {
	orderRepo   repositories.PaymentRecordRepository
	depositRepo repositories.PaymentRecordRepository
	notifier    Notifier
	metrics     *metrics.Metrics
	cfg         config.WebhookConfig
}

// NewWebhookUsecase creates a new webhook usecase
func NewWebhookUsecase(
	orderRepo repositories.PaymentRecordRepository,
	depositRepo repositories.PaymentRecordRepository,
	notifier Notifier,
	m *metrics.Metrics,
	cfg config.WebhookConfig,
) *WebhookUsecase {
	return &WebhookUsecase{
		orderRepo:   orderRepo,
		depositRepo: depositRepo,
		notifier:    notifier,
		metrics:     m,
		cfg:         cfg,
	}
}

// mapEventStatus maps a processor event to the target lifecycle status.
// Both "payment_started" and "payment.started" spellings occur in the wild.
func mapEventStatus(event string) (entities.RecordStatus, bool) {
	name := strings.TrimPrefix(strings.TrimPrefix(event, "payment_"), "payment.")
	switch name {
	case "started":
		return entities.RecordStatusProcessing, true
	case "completed":
		return entities.RecordStatusCompleted, true
	case "bounced":
		return entities.RecordStatusDiscrepancy, true
	case "refunded":
		return entities.RecordStatusFailed, true
	default:
		return "", false
	}
}

// ProcessPaymentWebhook handles one processor callback. Applied, duplicate and
// stale outcomes all succeed; only malformed input, a missing record or a
// storage failure surface as errors.
func (u *WebhookUsecase) ProcessPaymentWebhook(ctx context.Context, raw json.RawMessage) (*WebhookResult, error) {
	var payload WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, domainerrors.BadRequest("malformed webhook body")
	}
	if payload.Event == "" {
		return nil, domainerrors.BadRequest("missing event type")
	}
	if payload.Payment.ID == "" {
		return nil, domainerrors.BadRequest("missing payment id")
	}
	number := payload.Payment.Metadata.Number
	if number == "" {
		return nil, domainerrors.BadRequest("missing order number in metadata")
	}

	target, ok := mapEventStatus(payload.Event)
	if !ok {
		return nil, domainerrors.BadRequest("unknown event type: " + payload.Event)
	}

	record, repo, err := u.findRecord(ctx, number)
	if err != nil {
		return nil, err
	}

	if reasons := u.validatePayload(&payload, record); len(reasons) > 0 {
		return nil, domainerrors.BadRequest("payload does not match record: " + strings.Join(reasons, "; "))
	}

	fields := entities.TransitionFields{
		SourceTxnHash:     payload.Payment.Source.TxnHash,
		SourceChainName:   payload.Payment.Source.ChainName,
		SourceTokenAddr:   payload.Payment.Source.TokenAddress,
		SourceTokenAmount: payload.Payment.Source.TokenAmount,
		CallbackPayload:   string(raw),
	}

	outcome, err := repo.TryTransition(ctx, record.ID, target, fields)
	if err != nil {
		logger.Error(ctx, "transition failed",
			zap.String("number", number),
			zap.String("target", string(target)),
			zap.Error(err))
		return nil, domainerrors.StorageError(err)
	}
	if u.metrics != nil {
		u.metrics.TransitionsTotal.WithLabelValues(string(record.Kind), string(outcome)).Inc()
	}

	logger.Info(ctx, "webhook processed",
		zap.String("number", number),
		zap.String("kind", string(record.Kind)),
		zap.String("event", payload.Event),
		zap.String("outcome", string(outcome)))

	if outcome == repositories.TransitionApplied && target.IsTerminal() {
		u.notifyTerminal(ctx, record, payload.Event, target)
	}

	status := record.Status
	if outcome == repositories.TransitionApplied || outcome == repositories.TransitionIgnoredDuplicate {
		status = target
	}
	return &WebhookResult{
		Outcome: outcome,
		Kind:    record.Kind,
		Number:  number,
		Status:  status,
	}, nil
}

// findRecord resolves the correlation number: orders first, then deposits.
// Only a confirmed miss falls through; a storage failure must surface as 500
// so the processor keeps retrying instead of treating the record as gone.
func (u *WebhookUsecase) findRecord(ctx context.Context, number string) (*entities.PaymentRecord, repositories.PaymentRecordRepository, error) {
	record, err := u.orderRepo.GetByNumber(ctx, number)
	if err == nil {
		return record, u.orderRepo, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, domainerrors.StorageError(err)
	}

	record, err = u.depositRepo.GetByNumber(ctx, number)
	if err == nil {
		return record, u.depositRepo, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, domainerrors.StorageError(err)
	}
	return nil, nil, domainerrors.NotFound("no record for number " + number)
}

// validatePayload checks payload-to-record consistency. The destination
// address check always runs; chain, token and amount checks only under
// strict validation.
func (u *WebhookUsecase) validatePayload(payload *WebhookPayload, record *entities.PaymentRecord) []string {
	var reasons []string

	dest := payload.Payment.Destination
	if dest.Address != "" && !sameAddress(dest.Address, record.MerchantAddress) {
		reasons = append(reasons, "destination address "+dest.Address+" does not match merchant address")
	}

	if u.cfg.StrictValidation {
		if dest.ChainID != "" && dest.ChainID != record.MerchantChainID {
			reasons = append(reasons, "chain id "+dest.ChainID+" does not match "+record.MerchantChainID)
		}
		if dest.TokenSymbol != "" && !strings.EqualFold(dest.TokenSymbol, record.RequiredToken) {
			reasons = append(reasons, "token "+dest.TokenSymbol+" does not match "+record.RequiredToken)
		}
		if dest.AmountUnits != "" && dest.AmountUnits != record.RequiredAmountUSD {
			reasons = append(reasons, "amount "+dest.AmountUnits+" does not match "+record.RequiredAmountUSD)
		}
	}
	return reasons
}

// sameAddress compares two addresses ignoring EIP-55 casing when both are
// valid hex addresses, falling back to a case-insensitive string compare.
func sameAddress(a, b string) bool {
	if common.IsHexAddress(a) && common.IsHexAddress(b) {
		return common.HexToAddress(a) == common.HexToAddress(b)
	}
	return strings.EqualFold(a, b)
}

// notifyTerminal fires the best-effort merchant notification after a record
// newly reached a terminal status. Failures are logged and swallowed; the
// webhook response must never depend on notification delivery.
func (u *WebhookUsecase) notifyTerminal(ctx context.Context, record *entities.PaymentRecord, event string, status entities.RecordStatus) {
	if u.notifier == nil {
		return
	}
	result := u.notifier.Notify(ctx, record.MerchantID, event, map[string]interface{}{
		"order_id":         record.Number,
		"kind":             string(record.Kind),
		"status":           string(status),
		"display_amount":   record.DisplayAmount,
		"display_currency": record.DisplayCurrency,
	})
	if !result.Success {
		if u.metrics != nil {
			u.metrics.NotifyFailures.Inc()
		}
		logger.Warn(ctx, "merchant notification failed",
			zap.String("number", record.Number),
			zap.String("error", result.Error))
	}
}
