package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-x12/internal/storage"
	"github.com/sirosfoundation/go-x12/internal/storage/memory"
	"github.com/sirosfoundation/go-x12/pkg/document"
)

func testOrderBatch() *document.PurchaseOrderBatch {
	return &document.PurchaseOrderBatch{TransactionSets: []document.PurchaseOrder{{
		PONumber: "PO-2025-001",
		Items:    []document.OrderItem{{SKU: "WIDGET-01", Quantity: 10}},
	}}}
}

func TestProcessTransaction_Outbound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store, nil)

	out, err := svc.ProcessTransaction(ctx, document.TypePurchaseOrder, "ACME", "SUPPLIER", testOrderBatch())
	require.NoError(t, err)

	text, ok := out.(string)
	require.True(t, ok, "outbound translation returns wire text")
	assert.True(t, strings.HasPrefix(text, "ISA"))
	assert.Contains(t, text, "BEG*00*NE*PO-2025-001")

	svc.Flush()
	records, err := store.ListTransactions(ctx, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, document.TypePurchaseOrder, rec.Type)
	assert.Equal(t, document.DirectionOutbound, rec.Direction)
	assert.Equal(t, "SUPPLIER", rec.Partner, "outbound partner is the receiver")
	assert.Equal(t, "PO-2025-001", rec.BusinessID)
	assert.Equal(t, text, rec.Payload)
	assert.Equal(t, storage.StreamTest, rec.Stream)
	assert.Equal(t, storage.ValidationValid, rec.Validation)
	assert.Equal(t, storage.AckPending, rec.AckStatus)
	assert.True(t, strings.HasPrefix(rec.ID, "850-"))
}

func TestProcessTransaction_OutboundFromJSONShape(t *testing.T) {
	svc := NewService(nil, nil)

	payload := map[string]any{
		"invoiceNumber": "INV-9",
		"poNumber":      "PO-1",
		"invoiceDate":   "2025-11-01",
		"totalAmount":   19.98,
		"items": []any{
			map[string]any{"sku": "WIDGET-01", "quantity": 2, "unitPrice": 9.99},
		},
	}
	out, err := svc.ProcessTransaction(context.Background(), document.TypeInvoice, "SUPPLIER", "ACME", payload)
	require.NoError(t, err)
	text := out.(string)
	assert.Contains(t, text, "BIG*20251101*INV-9*20251101*PO-1~")
	assert.Contains(t, text, "TDS*1998~")
}

func TestProcessTransaction_SingleOrderWrapsIntoBatch(t *testing.T) {
	svc := NewService(nil, nil)

	po := &document.PurchaseOrder{
		PONumber: "PO-77",
		Items:    []document.OrderItem{{SKU: "SKU-1", Quantity: 1}},
	}
	out, err := svc.ProcessTransaction(context.Background(), document.TypePurchaseOrder, "ACME", "SUPPLIER", po)
	require.NoError(t, err)
	assert.Contains(t, out.(string), "BEG*00*NE*PO-77")
}

func TestProcessTransaction_InboundByISAPrefix(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store, nil)

	raw := "ISA*00*          *00*          *ZZ*ACME*ZZ*SUPPLIER*251027*1430*U*00401*000000001*0*P*>~" +
		"ST*850*0042~BEG*00*NE*PO-55**20251027~PO1*1*3*EA*1.00**VN*SKU-9~"
	out, err := svc.ProcessTransaction(ctx, document.TypePurchaseOrder, "SUPPLIER", "ACME", raw)
	require.NoError(t, err)

	po, ok := out.(*document.PurchaseOrder)
	require.True(t, ok, "inbound translation returns the parsed document")
	assert.Equal(t, "PO-55", po.PONumber)

	svc.Flush()
	records, err := store.ListTransactions(ctx, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, document.DirectionInbound, records[0].Direction)
	assert.Equal(t, "SUPPLIER", records[0].Partner, "inbound partner is the sender")
	assert.Equal(t, "PO-55", records[0].BusinessID)
	assert.Equal(t, "0042", records[0].ControlNumber)

	// The logged payload is the translation result, the parsed
	// document, not the wire text that came in.
	want, err := json.Marshal(po)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), records[0].Payload)
	assert.NotContains(t, records[0].Payload, "ISA*")
}

func TestProcessTransaction_InboundLeadingWhitespace(t *testing.T) {
	svc := NewService(nil, nil)
	out, err := svc.ProcessTransaction(context.Background(), document.TypeFunctionalAck, "S", "R",
		"\n  ISA*00~ST*997*0001~AK1*PO*7~AK9*A*1*1*1~")
	require.NoError(t, err)
	ack := out.(*document.FunctionalAck)
	assert.True(t, ack.Accepted())
	assert.Equal(t, "7", ack.ControlNumber)
}

func TestProcessTransaction_UnsupportedCombinations(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	// 820 is parse-only.
	_, err := svc.ProcessTransaction(ctx, document.TypeRemittance, "S", "R", map[string]any{})
	require.ErrorIs(t, err, ErrUnsupportedTransaction)

	// 940 is generate-only.
	_, err = svc.ProcessTransaction(ctx, document.TypeWarehouseOrder, "S", "R", "ISA*00~ST*940*0001~")
	require.ErrorIs(t, err, ErrUnsupportedTransaction)

	// Unknown type.
	_, err = svc.ProcessTransaction(ctx, document.TransactionType("999"), "S", "R", "ISA~")
	require.ErrorIs(t, err, ErrUnsupportedTransaction)
}

func TestProcessTransaction_ValidationErrorPropagates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store, nil)

	_, err := svc.ProcessTransaction(ctx, document.TypePurchaseOrder, "ACME", "SUPPLIER",
		&document.PurchaseOrderBatch{TransactionSets: []document.PurchaseOrder{{}}})
	require.Error(t, err)

	var verr *document.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "poNumber")

	svc.Flush()
	records, err := store.ListTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, records, "failed translations are not logged")
}

type failingStore struct{}

func (failingStore) CreateTransaction(context.Context, *storage.TransactionRecord) error {
	return errors.New("sink down")
}
func (failingStore) GetTransaction(context.Context, string) (*storage.TransactionRecord, error) {
	return nil, nil
}
func (failingStore) ListTransactions(context.Context, *storage.TransactionFilter) ([]*storage.TransactionRecord, error) {
	return nil, nil
}
func (failingStore) Ping(context.Context) error  { return nil }
func (failingStore) Close(context.Context) error { return nil }

func TestProcessTransaction_SinkFailureDoesNotFailTranslation(t *testing.T) {
	svc := NewService(failingStore{}, nil)

	out, err := svc.ProcessTransaction(context.Background(), document.TypePurchaseOrder, "ACME", "SUPPLIER", testOrderBatch())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	svc.Flush()
}

func TestProcessTransaction_BusinessIDTruncation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store, nil)

	var sets []document.PurchaseOrder
	for i := 0; i < 12; i++ {
		sets = append(sets, document.PurchaseOrder{
			PONumber: fmt.Sprintf("PO-2025-%04d", i),
			Items:    []document.OrderItem{{SKU: "S", Quantity: 1}},
		})
	}
	_, err := svc.ProcessTransaction(ctx, document.TypePurchaseOrder, "ACME", "SUPPLIER",
		&document.PurchaseOrderBatch{TransactionSets: sets})
	require.NoError(t, err)

	svc.Flush()
	records, err := store.ListTransactions(ctx, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Len(t, records[0].BusinessID, 100)
	assert.True(t, strings.HasSuffix(records[0].BusinessID, "..."))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// 60 two-byte runes: 120 bytes, with byte 97 falling mid-rune.
	long := strings.Repeat("é", 60)
	got := truncate(long)

	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
	assert.LessOrEqual(t, len(got), 100)
	assert.True(t, strings.HasSuffix(got, "..."))

	assert.Equal(t, "PO-1", truncate("PO-1"), "short identifiers pass through")
}
