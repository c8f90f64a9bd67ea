package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirosfoundation/go-x12/internal/storage"
	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/generate"
	"github.com/sirosfoundation/go-x12/pkg/parse"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// ErrUnsupportedTransaction reports a type/direction combination with no
// registered generator or parser.
var ErrUnsupportedTransaction = errors.New("unsupported transaction")

// maxBusinessID caps the logged business identifier. Multi-set 850
// payloads join their PO numbers, which can run long.
const maxBusinessID = 100

// storeTimeout bounds each fire-and-forget log write.
const storeTimeout = 5 * time.Second

// Service routes translation requests to generators and parsers and
// appends each result to the transaction log.
type Service struct {
	store   storage.TransactionStore
	log     *slog.Logger
	stream  string
	x12opts []x12.Option

	wg sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// WithBuilderOptions forwards envelope options (control source, clock,
// usage indicator) to every outbound generation.
func WithBuilderOptions(opts ...x12.Option) Option {
	return func(s *Service) { s.x12opts = append(s.x12opts, opts...) }
}

// WithStream sets the log classification stream, normally
// storage.StreamTest or storage.StreamProduction.
func WithStream(stream string) Option {
	return func(s *Service) { s.stream = stream }
}

// NewService creates a translation service. A nil store disables
// transaction logging; a nil logger falls back to slog's default.
func NewService(store storage.TransactionStore, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:  store,
		log:    logger,
		stream: storage.StreamTest,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessTransaction translates one payload. Outbound calls take a
// business document (typed, or the JSON-shaped equivalent) and return
// the rendered interchange text; inbound calls take raw X12 text and
// return the parsed document. The payload decides the direction: text
// opening with the ISA tag is inbound, everything else is outbound.
func (s *Service) ProcessTransaction(ctx context.Context, typ document.TransactionType, sender, receiver string, payload any) (any, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrUnsupportedTransaction, typ)
	}

	if raw, ok := rawInterchange(payload); ok {
		doc, businessID, control, err := s.parseInbound(typ, raw)
		if err != nil {
			return nil, err
		}
		// The log carries the translation result, for inbound the
		// parsed document, not the wire text that produced it.
		result, err := json.Marshal(doc)
		if err != nil {
			s.log.Error("encoding inbound result for logging", "type", typ, "error", err)
		}
		s.logTransaction(ctx, &storage.TransactionRecord{
			ID:            storage.NewRecordID(typ),
			Type:          typ,
			Direction:     document.DirectionInbound,
			Sender:        sender,
			Receiver:      receiver,
			Partner:       sender,
			BusinessID:    businessID,
			ControlNumber: control,
			Payload:       string(result),
		})
		return doc, nil
	}

	text, businessID, err := s.generateOutbound(typ, sender, receiver, payload)
	if err != nil {
		return nil, err
	}
	s.logTransaction(ctx, &storage.TransactionRecord{
		ID:         storage.NewRecordID(typ),
		Type:       typ,
		Direction:  document.DirectionOutbound,
		Sender:     sender,
		Receiver:   receiver,
		Partner:    receiver,
		BusinessID: businessID,
		Payload:    text,
	})
	return text, nil
}

// rawInterchange reports whether the payload is inbound X12 text. Only
// the ISA prefix is consulted; no further content negotiation happens.
func rawInterchange(payload any) (string, bool) {
	var text string
	switch v := payload.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	case json.RawMessage:
		var decoded string
		if err := json.Unmarshal(v, &decoded); err != nil {
			return "", false
		}
		text = decoded
	default:
		return "", false
	}
	if strings.HasPrefix(strings.TrimSpace(text), "ISA") {
		return text, true
	}
	return "", false
}

func (s *Service) parseInbound(typ document.TransactionType, raw string) (doc any, businessID, control string, err error) {
	switch typ {
	case document.TypePurchaseOrder:
		po := parse.PurchaseOrder(raw)
		return po, truncate(po.PONumber), po.ControlNumber, nil
	case document.TypePurchaseOrderChange:
		chg := parse.PurchaseOrderChange(raw)
		return chg, truncate(chg.ChangeOrderNumber), "", nil
	case document.TypeRemittance:
		rem := parse.Remittance(raw)
		return rem, truncate(rem.PaymentNumber), "", nil
	case document.TypeCarrierStatus:
		cs := parse.CarrierStatus(raw)
		return cs, truncate(cs.ShipmentID), "", nil
	case document.TypeReturnAuthorization:
		ra := parse.ReturnAuthorization(raw)
		return ra, truncate(ra.RMANumber), "", nil
	case document.TypeFunctionalAck:
		ack := parse.FunctionalAck(raw)
		return ack, truncate(ack.ControlNumber), ack.ControlNumber, nil
	}
	return nil, "", "", fmt.Errorf("%w: no parser for inbound %s", ErrUnsupportedTransaction, typ)
}

func (s *Service) generateOutbound(typ document.TransactionType, sender, receiver string, payload any) (text, businessID string, err error) {
	switch typ {
	case document.TypePurchaseOrder:
		batch, err := purchaseOrderBatch(payload)
		if err != nil {
			return "", "", err
		}
		if err := batch.Validate(); err != nil {
			return "", "", err
		}
		numbers := make([]string, len(batch.TransactionSets))
		for i := range batch.TransactionSets {
			numbers[i] = batch.TransactionSets[i].PONumber
		}
		return generate.PurchaseOrders(batch, sender, receiver, s.x12opts...),
			truncate(strings.Join(numbers, ", ")), nil

	case document.TypePurchaseOrderChange:
		return generateDoc(s, payload, generate.PurchaseOrderChange,
			func(d *document.PurchaseOrderChange) string { return d.ChangeOrderNumber }, sender, receiver)
	case document.TypeWarehouseOrder:
		return generateDoc(s, payload, generate.WarehouseOrder,
			func(d *document.WarehouseOrder) string { return d.PONumber }, sender, receiver)
	case document.TypeFunctionalAck:
		return generateDoc(s, payload, generate.FunctionalAck,
			func(d *document.FunctionalAck) string { return d.ControlNumber }, sender, receiver)
	case document.TypePOAcknowledgment:
		return generateDoc(s, payload, generate.POAcknowledgment,
			func(d *document.POAcknowledgment) string { return d.PONumber }, sender, receiver)
	case document.TypeShipNotice:
		return generateDoc(s, payload, generate.ShipNotice,
			func(d *document.ShipNotice) string { return d.ShipmentID }, sender, receiver)
	case document.TypeInvoice:
		return generateDoc(s, payload, generate.Invoice,
			func(d *document.Invoice) string { return d.InvoiceNumber }, sender, receiver)
	case document.TypeInventoryAdvice:
		return generateDoc(s, payload, generate.InventoryAdvice,
			func(d *document.InventoryAdvice) string { return d.AdviceNumber }, sender, receiver)
	}
	return "", "", fmt.Errorf("%w: no generator for outbound %s", ErrUnsupportedTransaction, typ)
}

// validator is implemented by every outbound document type.
type validator interface {
	Validate() error
}

// generateDoc decodes, validates, and renders one outbound document.
func generateDoc[T any, PT interface {
	*T
	validator
}](s *Service, payload any, gen func(PT, string, string, ...x12.Option) string, businessID func(PT) string, sender, receiver string) (string, string, error) {
	doc, err := decodePayload[T, PT](payload)
	if err != nil {
		return "", "", err
	}
	if err := doc.Validate(); err != nil {
		return "", "", err
	}
	return gen(doc, sender, receiver, s.x12opts...), truncate(businessID(doc)), nil
}

// decodePayload accepts either the typed document or anything that
// marshals to its JSON shape (maps from decoded request bodies,
// json.RawMessage).
func decodePayload[T any, PT interface{ *T }](payload any) (PT, error) {
	switch v := payload.(type) {
	case PT:
		return v, nil
	case T:
		return &v, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	doc := PT(new(T))
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return doc, nil
}

// purchaseOrderBatch accepts a batch, a single purchase order, or the
// JSON shape of either; a lone order wraps into a one-set batch.
func purchaseOrderBatch(payload any) (*document.PurchaseOrderBatch, error) {
	batch, err := decodePayload[document.PurchaseOrderBatch](payload)
	if err != nil {
		return nil, err
	}
	if len(batch.TransactionSets) > 0 {
		return batch, nil
	}
	po, err := decodePayload[document.PurchaseOrder](payload)
	if err != nil {
		return nil, err
	}
	return &document.PurchaseOrderBatch{TransactionSets: []document.PurchaseOrder{*po}}, nil
}

func truncate(s string) string {
	if len(s) <= maxBusinessID {
		return s
	}
	// Back off to a rune boundary so a multi-byte identifier is never
	// cut mid-rune.
	cut := maxBusinessID - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// logTransaction appends the record without gating the caller. Sink
// failure is reported to the operational log only.
func (s *Service) logTransaction(_ context.Context, rec *storage.TransactionRecord) {
	if s.store == nil {
		return
	}
	rec.Stream = s.stream
	rec.Validation = storage.ValidationValid
	rec.AckStatus = storage.AckPending
	rec.CreatedAt = time.Now().UTC()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := s.store.CreateTransaction(ctx, rec); err != nil {
			s.log.Error("transaction log write failed",
				"id", rec.ID,
				"type", rec.Type,
				"direction", rec.Direction,
				"error", err)
		}
	}()
}

// Flush waits for in-flight log writes. Call it before shutdown.
func (s *Service) Flush() {
	s.wg.Wait()
}
