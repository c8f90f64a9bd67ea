package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldPaths(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	paths := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		paths[i] = f.Path
	}
	return paths
}

func TestPurchaseOrderValidate(t *testing.T) {
	po := PurchaseOrder{
		PONumber: "PO-1",
		Items:    []OrderItem{{SKU: "WIDGET-01", Quantity: 10}},
	}
	assert.NoError(t, po.Validate())
}

func TestPurchaseOrderValidate_ReportsAllFields(t *testing.T) {
	po := PurchaseOrder{
		Items: []OrderItem{{SKU: "", Quantity: 0}},
	}

	paths := fieldPaths(t, po.Validate())
	assert.Contains(t, paths, "poNumber")
	assert.Contains(t, paths, "items[0].sku")
	assert.Contains(t, paths, "items[0].quantity")
}

func TestPurchaseOrderBatchValidate_PrefixesSetIndex(t *testing.T) {
	batch := PurchaseOrderBatch{
		TransactionSets: []PurchaseOrder{
			{PONumber: "PO-1"},
			{}, // missing poNumber
		},
	}

	paths := fieldPaths(t, batch.Validate())
	assert.Equal(t, []string{"transactionSets[1].poNumber"}, paths)
}

func TestPurchaseOrderBatchValidate_Empty(t *testing.T) {
	batch := PurchaseOrderBatch{}
	paths := fieldPaths(t, batch.Validate())
	assert.Contains(t, paths, "transactionSets")
}

func TestPurchaseOrderChangeValidate(t *testing.T) {
	change := PurchaseOrderChange{
		PONumber: "PO-1",
		Items: []ChangeItem{
			{SKU: "SKU-1", ChangeCode: ChangeModify},
		},
	}
	assert.NoError(t, change.Validate())

	change.Items[0].ChangeCode = "XX"
	paths := fieldPaths(t, change.Validate())
	assert.Contains(t, paths, "items[0].changeCode")
}

func TestFunctionalAckValidate(t *testing.T) {
	ack := FunctionalAck{ControlNumber: "1", Status: AckAccepted}
	assert.NoError(t, ack.Validate())

	ack.Status = "Maybe"
	err := ack.Validate()
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestInvoiceValidate(t *testing.T) {
	inv := Invoice{
		InvoiceNumber: "INV-1",
		PONumber:      "PO-1",
		InvoiceDate:   "2025-10-27",
		Items:         []InvoiceItem{{SKU: "SKU-1", Quantity: 2, UnitPrice: 9.99}},
		TotalAmount:   19.98,
	}
	assert.NoError(t, inv.Validate())

	inv.Items[0].UnitPrice = 0
	paths := fieldPaths(t, inv.Validate())
	assert.Contains(t, paths, "items[0].unitPrice")
}

func TestShipNoticeValidate(t *testing.T) {
	asn := ShipNotice{
		ShipmentID:     "SHIP-1",
		PONumber:       "PO-1",
		ShipDate:       "2025-10-27",
		Carrier:        "UPSN",
		TrackingNumber: "1Z999",
		ShipTo:         Address{Name: "Acme"},
		Items:          []ShipmentItem{{SKU: "SKU-1", Quantity: 1}},
	}
	assert.NoError(t, asn.Validate())

	asn.TrackingNumber = ""
	paths := fieldPaths(t, asn.Validate())
	assert.Equal(t, []string{"trackingNumber"}, paths)
}

func TestValidationErrorMessageListsPaths(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Path: "poNumber", Message: "is required"},
		{Path: "items[0].sku", Message: "is required"},
	}}
	assert.Equal(t, "validation failed: poNumber, items[0].sku", err.Error())
}

func TestFunctionalAckAccepted(t *testing.T) {
	assert.True(t, (&FunctionalAck{Status: AckAccepted}).Accepted())
	assert.True(t, (&FunctionalAck{Status: AckAcceptedWithChanges}).Accepted())
	assert.False(t, (&FunctionalAck{Status: AckRejected}).Accepted())
}

func TestTransactionTypeEnums(t *testing.T) {
	assert.True(t, TypePurchaseOrder.Valid())
	assert.False(t, TransactionType("999").Valid())
	assert.Equal(t, "PO", TypePurchaseOrder.FunctionalID())
	assert.Equal(t, "FA", TypeFunctionalAck.FunctionalID())
	assert.Equal(t, "", TypeRemittance.FunctionalID(), "parse-only types have no outbound functional ID")
}
