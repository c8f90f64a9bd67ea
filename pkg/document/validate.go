package document

import (
	"fmt"
	"strings"
)

// FieldError is one offending field in a shape validation failure.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError reports every required-field violation in a document at
// once, by field path, so API callers can surface per-field diagnostics.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	paths := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		paths[i] = f.Path
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(paths, ", "))
}

// errs collects field errors during a Validate pass.
type errs struct {
	fields []FieldError
}

func (e *errs) add(path, message string) {
	e.fields = append(e.fields, FieldError{Path: path, Message: message})
}

func (e *errs) require(path, value string) {
	if value == "" {
		e.add(path, "is required")
	}
}

func (e *errs) err() error {
	if len(e.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: e.fields}
}

// Validate checks the required shape of a purchase order.
func (p *PurchaseOrder) Validate() error {
	var e errs
	e.require("poNumber", p.PONumber)
	for i, item := range p.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		e.require(prefix+"sku", item.SKU)
		if item.Quantity <= 0 {
			e.add(prefix+"quantity", "must be positive")
		}
	}
	return e.err()
}

// Validate checks every transaction set in the batch, prefixing field
// paths with the set index.
func (b *PurchaseOrderBatch) Validate() error {
	var e errs
	if len(b.TransactionSets) == 0 {
		e.add("transactionSets", "must contain at least one transaction set")
	}
	for i := range b.TransactionSets {
		if err := b.TransactionSets[i].Validate(); err != nil {
			if verr, ok := err.(*ValidationError); ok {
				for _, f := range verr.Fields {
					e.add(fmt.Sprintf("transactionSets[%d].%s", i, f.Path), f.Message)
				}
			}
		}
	}
	return e.err()
}

// Validate checks the required shape of a purchase order change.
func (c *PurchaseOrderChange) Validate() error {
	var e errs
	e.require("poNumber", c.PONumber)
	if c.ChangeType != "" && c.ChangeType != "01" && c.ChangeType != "04" {
		e.add("changeType", "must be 01 or 04")
	}
	for i, item := range c.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		e.require(prefix+"sku", item.SKU)
		if !item.ChangeCode.Valid() {
			e.add(prefix+"changeCode", "must be one of AI, DI, CA, QD")
		}
	}
	return e.err()
}

// Validate checks the required shape of a warehouse shipping order.
func (w *WarehouseOrder) Validate() error {
	var e errs
	e.require("poNumber", w.PONumber)
	e.require("shipTo.name", w.ShipTo.Name)
	for i, item := range w.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		e.require(prefix+"sku", item.SKU)
		if item.Quantity <= 0 {
			e.add(prefix+"quantity", "must be positive")
		}
	}
	return e.err()
}

// Validate checks the required shape of a functional acknowledgment.
func (a *FunctionalAck) Validate() error {
	var e errs
	e.require("controlNumber", a.ControlNumber)
	if !a.Status.Valid() {
		e.add("status", "must be Accepted, Rejected, or AcceptedWithChanges")
	}
	return e.err()
}

// Validate checks the required shape of a PO acknowledgment.
func (p *POAcknowledgment) Validate() error {
	var e errs
	e.require("poNumber", p.PONumber)
	if !p.Status.Valid() {
		e.add("ackStatus", "must be Accepted, Rejected, or AcceptedWithChanges")
	}
	for i, item := range p.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		e.require(prefix+"sku", item.SKU)
		if !item.Status.Valid() {
			e.add(prefix+"status", "must be Accepted, Rejected, or Backordered")
		}
	}
	return e.err()
}

// Validate checks the required shape of an advance ship notice.
func (s *ShipNotice) Validate() error {
	var e errs
	e.require("shipmentId", s.ShipmentID)
	e.require("poNumber", s.PONumber)
	e.require("shipDate", s.ShipDate)
	e.require("carrier", s.Carrier)
	e.require("trackingNumber", s.TrackingNumber)
	e.require("shipTo.name", s.ShipTo.Name)
	for i, item := range s.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		e.require(prefix+"sku", item.SKU)
		if item.Quantity <= 0 {
			e.add(prefix+"quantity", "must be positive")
		}
	}
	return e.err()
}

// Validate checks the required shape of an invoice.
func (inv *Invoice) Validate() error {
	var e errs
	e.require("invoiceNumber", inv.InvoiceNumber)
	e.require("poNumber", inv.PONumber)
	e.require("invoiceDate", inv.InvoiceDate)
	for i, item := range inv.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		e.require(prefix+"sku", item.SKU)
		if item.Quantity <= 0 {
			e.add(prefix+"quantity", "must be positive")
		}
		if item.UnitPrice <= 0 {
			e.add(prefix+"unitPrice", "must be positive")
		}
	}
	return e.err()
}

// Validate checks the required shape of an inventory advice.
func (a *InventoryAdvice) Validate() error {
	var e errs
	e.require("adviceNumber", a.AdviceNumber)
	e.require("date", a.Date)
	for i, item := range a.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		e.require(prefix+"sku", item.SKU)
		if item.Quantity < 0 {
			e.add(prefix+"quantity", "must not be negative")
		}
	}
	return e.err()
}
