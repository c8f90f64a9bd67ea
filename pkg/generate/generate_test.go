package generate

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

var testClock = time.Date(2025, 10, 27, 14, 30, 0, 0, time.UTC)

func clockOpt() x12.Option { return x12.WithClock(testClock) }

func sampleOrder() document.PurchaseOrder {
	return document.PurchaseOrder{
		PONumber: "PO-2025-001",
		Date:     "2025-10-27",
		Parties: []document.Party{{
			Role: document.RoleShipTo,
			Address: document.Address{
				Name:  "Acme Logistics",
				City:  "Tech City",
				State: "CA",
				Zip:   "90210",
			},
		}},
		Items: []document.OrderItem{{SKU: "WIDGET-01", Quantity: 10}},
	}
}

// checkEnvelope verifies the count and control number chain every
// generated interchange must satisfy.
func checkEnvelope(t *testing.T, output string) {
	t.Helper()
	segs := x12.Tokenize(output)
	require.NotEmpty(t, segs)
	require.Equal(t, "ISA", segs[0].Tag)

	var (
		groups, setsInGroup int
		sinceST             int
		stControl           string
		gsControl           string
	)
	for _, seg := range segs {
		switch seg.Tag {
		case "GS":
			groups++
			setsInGroup = 0
			gsControl = seg.Element(6)
		case "ST":
			sinceST = 1
			stControl = seg.Element(2)
		case "SE":
			sinceST++
			assert.Equal(t, strconv.Itoa(sinceST), seg.Element(1),
				"SE count must equal segments from ST through SE inclusive")
			assert.Equal(t, stControl, seg.Element(2), "SE must echo ST control number")
			setsInGroup++
			sinceST = 0
		case "GE":
			assert.Equal(t, strconv.Itoa(setsInGroup), seg.Element(1),
				"GE must count ST/SE pairs in the group")
			assert.Equal(t, gsControl, seg.Element(2), "GE must echo GS control number")
		case "IEA":
			assert.Equal(t, strconv.Itoa(groups), seg.Element(1),
				"IEA must count GS/GE pairs")
			assert.Equal(t, segs[0].Element(13), seg.Element(2),
				"IEA must echo ISA control number")
		default:
			if sinceST > 0 {
				sinceST++
			}
		}
	}
}

func TestEnvelopeInvariants_AllGenerators(t *testing.T) {
	batch := document.PurchaseOrderBatch{TransactionSets: []document.PurchaseOrder{sampleOrder(), sampleOrder()}}

	outputs := map[string]string{
		"850": PurchaseOrders(&batch, "SENDER", "RECEIVER", clockOpt()),
		"860": PurchaseOrderChange(&document.PurchaseOrderChange{
			PONumber: "PO-1",
			Items:    []document.ChangeItem{{SKU: "SKU-1", ChangeCode: document.ChangeModify, Quantity: 5}},
		}, "SENDER", "RECEIVER", clockOpt()),
		"940": WarehouseOrder(&document.WarehouseOrder{
			PONumber: "PO-1",
			ShipTo:   document.Address{Name: "Acme", Address1: "400 Enterprise Way", City: "Carson City", State: "NV", Zip: "89701"},
			Items:    []document.ShipmentItem{{SKU: "WIDGET-X550", Quantity: 50}, {SKU: "CABLE-CAT6", Quantity: 200}},
		}, "SENDER", "RECEIVER", clockOpt()),
		"997": FunctionalAck(&document.FunctionalAck{ControlNumber: "42", Status: document.AckAccepted}, "SENDER", "RECEIVER", clockOpt()),
		"855": POAcknowledgment(&document.POAcknowledgment{
			PONumber: "PO-1", Status: document.AckAccepted,
			Items: []document.AckItem{{SKU: "SKU-1", Quantity: 3, Status: document.ItemAccepted}},
		}, "SENDER", "RECEIVER", clockOpt()),
		"856": ShipNotice(&document.ShipNotice{
			ShipmentID: "SHIP-1", PONumber: "PO-1", ShipDate: "2025-10-27T08:00:00Z",
			Carrier: "UPSN", TrackingNumber: "1Z999",
			ShipTo: document.Address{Name: "Acme", City: "Reno", State: "NV", Zip: "89501"},
			Items:  []document.ShipmentItem{{SKU: "SKU-1", Quantity: 4}},
		}, "SENDER", "RECEIVER", clockOpt()),
		"810": Invoice(&document.Invoice{
			InvoiceNumber: "INV-1", PONumber: "PO-1", InvoiceDate: "2025-10-27",
			Items:       []document.InvoiceItem{{SKU: "SKU-1", Quantity: 2, UnitPrice: 9.99}},
			TotalAmount: 19.98,
		}, "SENDER", "RECEIVER", clockOpt()),
		"846": InventoryAdvice(&document.InventoryAdvice{
			AdviceNumber: "ADV-1", Date: "2025-10-27",
			Items: []document.InventoryItem{{SKU: "SKU-1", Quantity: 120}},
		}, "SENDER", "RECEIVER", clockOpt()),
	}

	for name, output := range outputs {
		t.Run(name, func(t *testing.T) {
			checkEnvelope(t, output)
		})
	}
}

func TestPurchaseOrders_Scenario(t *testing.T) {
	batch := document.PurchaseOrderBatch{TransactionSets: []document.PurchaseOrder{sampleOrder()}}
	output := PurchaseOrders(&batch, "MYBUSINESS", "THE3PL", clockOpt())

	assert.Contains(t, output, "BEG*00*NE*PO-2025-001**20251027~")
	assert.Contains(t, output, "Acme Logistics")
	assert.Contains(t, output, "Tech City*CA*90210")
	assert.Contains(t, output, "CTT*1~")
	assert.Contains(t, output, "PO1*1*10*EA*0**VN*WIDGET-01~")
}

func TestPurchaseOrders_ZeroItems(t *testing.T) {
	po := sampleOrder()
	po.Items = nil
	batch := document.PurchaseOrderBatch{TransactionSets: []document.PurchaseOrder{po}}

	output := PurchaseOrders(&batch, "S", "R", clockOpt())

	assert.Contains(t, output, "CTT*0~")
	assert.NotContains(t, output, "PO1")
	checkEnvelope(t, output)
}

func TestPurchaseOrders_PartialAddressDropped(t *testing.T) {
	po := sampleOrder()
	po.Parties[0].City = "" // break the city/state/zip triple
	batch := document.PurchaseOrderBatch{TransactionSets: []document.PurchaseOrder{po}}

	output := PurchaseOrders(&batch, "S", "R", clockOpt())

	assert.Contains(t, output, "N1*ST*Acme Logistics")
	assert.NotContains(t, output, "N3*")
	assert.NotContains(t, output, "N4*")
}

func TestPurchaseOrders_PerSetControlNumbers(t *testing.T) {
	first := sampleOrder()
	first.ControlNumber = "7777"
	batch := document.PurchaseOrderBatch{TransactionSets: []document.PurchaseOrder{first, sampleOrder()}}

	output := PurchaseOrders(&batch, "S", "R", clockOpt())
	segs := x12.Tokenize(output)

	var controls []string
	for _, seg := range segs {
		if seg.Tag == "ST" {
			controls = append(controls, seg.Element(2))
		}
	}
	assert.Equal(t, []string{"7777", "0002"}, controls)
}

func TestWarehouseOrder_Shape(t *testing.T) {
	output := WarehouseOrder(&document.WarehouseOrder{
		PONumber: "PO-2025-001",
		ShipTo: document.Address{
			Name: "Acme Corp Logistics", Address1: "400 Enterprise Way",
			City: "Carson City", State: "NV", Zip: "89701",
		},
		Items: []document.ShipmentItem{{SKU: "WIDGET-X550", Quantity: 50}},
	}, "MYBUSINESS", "THE3PL", clockOpt())

	assert.Contains(t, output, "W05*N*PO-2025-001~")
	assert.Contains(t, output, "N1*ST*Acme Corp Logistics")
	assert.Contains(t, output, "N3*400 Enterprise Way*~")
	assert.Contains(t, output, "N4*Carson City*NV*89701*~")
	assert.Contains(t, output, "W01*50*EA**VN*WIDGET-X550~")
	assert.Contains(t, output, "CTT*1~")
}

func TestPurchaseOrderChange_Shape(t *testing.T) {
	output := PurchaseOrderChange(&document.PurchaseOrderChange{
		PONumber:          "PO-123",
		ChangeOrderNumber: "CHG-1",
		ChangeDate:        "2025-10-27",
		Items: []document.ChangeItem{
			{LineNumber: 3, SKU: "SKU-9", ChangeCode: document.ChangeQtyDecrease, Quantity: 2, Price: 15.5},
		},
	}, "S", "R", clockOpt())

	assert.Contains(t, output, "BCH*04*NE*PO-123*CHG-1*20251027~")
	assert.Contains(t, output, "POC*3*QD*2*0*EA*15.5**VN*SKU-9~")
}

func TestFunctionalAck_StatusCodes(t *testing.T) {
	tests := []struct {
		status document.AckStatus
		code   string
	}{
		{document.AckAccepted, "A"},
		{document.AckAcceptedWithChanges, "E"},
		{document.AckRejected, "R"},
	}

	for _, tc := range tests {
		output := FunctionalAck(&document.FunctionalAck{
			ControlNumber: "42",
			Status:        tc.status,
		}, "S", "R", clockOpt())

		assert.Contains(t, output, "AK1*OW*42~")
		assert.Contains(t, output, "AK9*"+tc.code+"*1*1*1~")
	}
}

func TestFunctionalAck_SegmentCount(t *testing.T) {
	output := FunctionalAck(&document.FunctionalAck{ControlNumber: "1", Status: document.AckAccepted}, "S", "R", clockOpt())

	// ST, AK1, AK9, SE.
	assert.Contains(t, output, "SE*4*0001~")
}

func TestPOAcknowledgment_StatusMapping(t *testing.T) {
	output := POAcknowledgment(&document.POAcknowledgment{
		PONumber: "PO-1",
		Status:   document.AckAcceptedWithChanges,
		Date:     "2025-10-27",
		Items: []document.AckItem{
			{SKU: "SKU-1", Quantity: 10, Status: document.ItemAccepted},
			{SKU: "SKU-2", Quantity: 5, Status: document.ItemBackordered},
		},
	}, "S", "R", clockOpt())

	assert.Contains(t, output, "BAK*00*AC*PO-1*20251027~")
	assert.Contains(t, output, "ACK*IA*10*EA~")
	assert.Contains(t, output, "ACK*IB*5*EA~")
	assert.Contains(t, output, "CTT*2~")
}

func TestShipNotice_HierarchyChain(t *testing.T) {
	output := ShipNotice(&document.ShipNotice{
		ShipmentID: "SHIP-9", PONumber: "PO-1", ShipDate: "2025-10-27T08:15:00Z",
		Carrier: "UPSN", TrackingNumber: "1Z999",
		ShipTo: document.Address{Name: "Acme", City: "Reno", State: "NV", Zip: "89501"},
		Items: []document.ShipmentItem{
			{SKU: "SKU-1", Quantity: 4},
			{SKU: "SKU-2", Quantity: 6},
		},
	}, "S", "R", clockOpt())

	segs := x12.Tokenize(output)
	type hl struct{ id, parent, level string }
	var chain []hl
	for _, seg := range segs {
		if seg.Tag == "HL" {
			chain = append(chain, hl{seg.Element(1), seg.Element(2), seg.Element(3)})
		}
	}

	require.Len(t, chain, 4)
	assert.Equal(t, hl{"1", "", "S"}, chain[0])
	assert.Equal(t, hl{"2", "1", "O"}, chain[1])
	assert.Equal(t, hl{"3", "2", "I"}, chain[2])
	assert.Equal(t, hl{"4", "2", "I"}, chain[3])

	// CTT counts hierarchical levels, not items.
	assert.Contains(t, output, "CTT*4~")
	assert.Contains(t, output, "BSN*00*SHIP-9*20251027*0815~")
	assert.Contains(t, output, "REF*CN*1Z999~")
	assert.Contains(t, output, "DTM*011*20251027*0815~")
}

func TestInvoice_ImpliedDecimalTotal(t *testing.T) {
	output := Invoice(&document.Invoice{
		InvoiceNumber: "INV-77", PONumber: "PO-1", InvoiceDate: "2025-10-27",
		Items:       []document.InvoiceItem{{SKU: "SKU-1", Quantity: 2, UnitPrice: 9.99}},
		TotalAmount: 19.98,
	}, "MYBUSINESS", "R", clockOpt())

	assert.Contains(t, output, "BIG*20251027*INV-77*20251027*PO-1~")
	assert.Contains(t, output, "N1*RE*MYBUSINESS~")
	assert.Contains(t, output, "IT1*1*2*EA*9.99*PE*VN*SKU-1~")
	assert.Contains(t, output, "TDS*1998~")
}

func TestInvoice_TotalRounds(t *testing.T) {
	output := Invoice(&document.Invoice{
		InvoiceNumber: "INV-1", PONumber: "PO-1", InvoiceDate: "2025-10-27",
		TotalAmount:   10.005,
	}, "S", "R", clockOpt())

	assert.Contains(t, output, "TDS*1001~")
}

func TestInventoryAdvice_Shape(t *testing.T) {
	output := InventoryAdvice(&document.InventoryAdvice{
		AdviceNumber: "ADV-31", Date: "2025-10-27",
		Items: []document.InventoryItem{{SKU: "SKU-1", Quantity: 120}},
	}, "S", "R", clockOpt())

	assert.Contains(t, output, "BIA*00*DD*ADV-31*20251027~")
	assert.Contains(t, output, "LIN**VN*SKU-1~")
	assert.Contains(t, output, "QTY*33*120*EA~")
	assert.Contains(t, output, "CTT*1~")
}

func TestGeneratedDatesFollowEnvelopeFormats(t *testing.T) {
	batch := document.PurchaseOrderBatch{TransactionSets: []document.PurchaseOrder{sampleOrder()}}
	output := PurchaseOrders(&batch, "S", "R", clockOpt())

	segs := x12.Tokenize(output)
	assert.Equal(t, "251027", segs[0].Element(9), "ISA date is YYMMDD")
	assert.Equal(t, "20251027", segs[1].Element(4), "GS date is CCYYMMDD")
}

func TestGeneratorOutputsAreNewlineJoined(t *testing.T) {
	output := FunctionalAck(&document.FunctionalAck{ControlNumber: "1", Status: document.AckAccepted}, "S", "R", clockOpt())
	for _, line := range strings.Split(output, "\n") {
		assert.True(t, strings.HasSuffix(line, "~"))
	}
}
