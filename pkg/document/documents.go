package document

// OrderItem is one purchase order line.
type OrderItem struct {
	LineNumber int     `json:"lineNumber,omitempty"` // assigned from position when zero
	SKU        string  `json:"sku"`                  // vendor part number
	Quantity   float64 `json:"quantity"`
	UOM        string  `json:"uom,omitempty"` // defaults to EA on the wire
	Price      float64 `json:"price,omitempty"`
}

// PurchaseOrder is the canonical 850 document, used on both the generate
// and parse paths.
type PurchaseOrder struct {
	PONumber      string      `json:"poNumber"`
	POType        string      `json:"poType,omitempty"` // BEG02, defaults to NE
	Date          string      `json:"date,omitempty"`   // ISO date
	ControlNumber string      `json:"controlNumber,omitempty"`
	Parties       []Party     `json:"parties,omitempty"`
	Items         []OrderItem `json:"items"`
}

// PartyByRole returns the first party with the given role, or nil.
func (p *PurchaseOrder) PartyByRole(role PartyRole) *Party {
	for i := range p.Parties {
		if p.Parties[i].Role == role {
			return &p.Parties[i]
		}
	}
	return nil
}

// PurchaseOrderBatch wraps the simple repeat loop of transaction sets a
// single 850 interchange may carry.
type PurchaseOrderBatch struct {
	TransactionSets []PurchaseOrder `json:"transactionSets"`
}

// ChangeItem is one 860 line item change.
type ChangeItem struct {
	LineNumber int        `json:"lineNumber,omitempty"` // original PO line reference
	SKU        string     `json:"sku"`
	ChangeCode ChangeCode `json:"changeCode"`
	Quantity   float64    `json:"quantity,omitempty"`
	Price      float64    `json:"price,omitempty"`
}

// PurchaseOrderChange is the canonical 860 document.
type PurchaseOrderChange struct {
	ChangeOrderNumber string       `json:"changeOrderNumber,omitempty"`
	PONumber          string       `json:"poNumber"`
	ChangeDate        string       `json:"changeDate,omitempty"`
	ChangeType        string       `json:"changeType,omitempty"` // 01=cancel, 04=change; defaults to 04
	ShipTo            *Address     `json:"shipTo,omitempty"`     // present only when the destination changes
	Items             []ChangeItem `json:"items"`
}

// ShipmentItem is one shipped line on a 940 or 856.
type ShipmentItem struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
	UOM      string  `json:"uom,omitempty"`
}

// WarehouseOrder is the canonical 940 warehouse shipping order.
type WarehouseOrder struct {
	PONumber string         `json:"poNumber"`
	ShipTo   Address        `json:"shipTo"`
	Items    []ShipmentItem `json:"items"`
}

// FunctionalAck is the canonical 997. It acknowledges a previously
// received functional group by control number.
type FunctionalAck struct {
	ControlNumber string    `json:"controlNumber"`          // GS06 of the acknowledged group
	FunctionalID  string    `json:"functionalId,omitempty"` // AK101, defaults to OW
	Status        AckStatus `json:"status"`
	IncludedSets  int       `json:"includedSets,omitempty"` // defaults to 1
}

// Accepted reports whether the acknowledged group was accepted, with or
// without changes.
func (a *FunctionalAck) Accepted() bool {
	return a.Status == AckAccepted || a.Status == AckAcceptedWithChanges
}

// AckItem is one acknowledged line on a 855.
type AckItem struct {
	SKU      string        `json:"sku"`
	Quantity float64       `json:"quantity"`
	Status   ItemAckStatus `json:"status"`
}

// POAcknowledgment is the canonical 855.
type POAcknowledgment struct {
	PONumber string    `json:"poNumber"`
	Status   AckStatus `json:"ackStatus"`
	Date     string    `json:"ackDate,omitempty"`
	Items    []AckItem `json:"items,omitempty"`
}

// ShipNotice is the canonical 856 advance ship notice. Its items hang off
// a three-level shipment, order, item hierarchy on the wire.
type ShipNotice struct {
	ShipmentID     string         `json:"shipmentId"`
	PONumber       string         `json:"poNumber"`
	ShipDate       string         `json:"shipDate"`
	Carrier        string         `json:"carrier"`
	TrackingNumber string         `json:"trackingNumber"`
	ShipTo         Address        `json:"shipTo"`
	Items          []ShipmentItem `json:"items"`
}

// InvoiceItem is one billed line on a 810.
type InvoiceItem struct {
	SKU       string  `json:"sku"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	UOM       string  `json:"uom,omitempty"`
}

// Invoice is the canonical 810.
type Invoice struct {
	InvoiceNumber string        `json:"invoiceNumber"`
	PONumber      string        `json:"poNumber"`
	InvoiceDate   string        `json:"invoiceDate"`
	Terms         string        `json:"terms,omitempty"`
	Items         []InvoiceItem `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
}

// InventoryItem is one advised line on a 846.
type InventoryItem struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
	Location string  `json:"location,omitempty"`
	Status   string  `json:"status,omitempty"`
}

// InventoryAdvice is the canonical 846.
type InventoryAdvice struct {
	AdviceNumber string          `json:"adviceNumber"`
	Date         string          `json:"date"`
	Items        []InventoryItem `json:"items"`
}

// PaidInvoice is one invoice referenced by a 820 remittance.
type PaidInvoice struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	AmountPaid    float64 `json:"amountPaid"`
}

// Remittance is the canonical 820, parse-only.
type Remittance struct {
	PaymentNumber string        `json:"paymentNumber"`
	PaymentDate   string        `json:"paymentDate"`
	TotalAmount   float64       `json:"totalAmount"`
	Payer         string        `json:"payer"`
	Invoices      []PaidInvoice `json:"invoices"`
}

// StatusDetail is one scan event on a 214 carrier status.
type StatusDetail struct {
	Code        string `json:"code"`
	City        string `json:"city"`
	State       string `json:"state"`
	Description string `json:"description,omitempty"`
}

// CarrierStatus is the canonical 214, parse-only.
type CarrierStatus struct {
	ShipmentID  string         `json:"shipmentId"`
	CarrierCode string         `json:"carrierCode"`
	StatusDate  string         `json:"statusDate"`
	StatusTime  string         `json:"statusTime,omitempty"`
	Details     []StatusDetail `json:"statusDetails"`
}

// CustomerRef identifies the customer on a return authorization.
type CustomerRef struct {
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`
}

// ReturnItem is one returned line on a 180.
type ReturnItem struct {
	SKU        string  `json:"sku"`
	Quantity   float64 `json:"quantity"`
	ReasonCode string  `json:"reasonCode,omitempty"`
}

// ReturnAuthorization is the canonical 180, parse-only.
type ReturnAuthorization struct {
	RMANumber   string       `json:"rmaNumber"`
	OrderNumber string       `json:"orderNumber,omitempty"`
	Customer    CustomerRef  `json:"customer"`
	Items       []ReturnItem `json:"items"`
}
