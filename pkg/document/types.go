package document

// TransactionType identifies an X12 transaction set by its three-digit
// code. The set is closed; dispatch switches over it exhaustively.
type TransactionType string

const (
	TypePurchaseOrder       TransactionType = "850"
	TypePurchaseOrderChange TransactionType = "860"
	TypeWarehouseOrder      TransactionType = "940"
	TypeFunctionalAck       TransactionType = "997"
	TypePOAcknowledgment    TransactionType = "855"
	TypeShipNotice          TransactionType = "856"
	TypeInvoice             TransactionType = "810"
	TypeInventoryAdvice     TransactionType = "846"
	TypeRemittance          TransactionType = "820"
	TypeCarrierStatus       TransactionType = "214"
	TypeReturnAuthorization TransactionType = "180"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TypePurchaseOrder, TypePurchaseOrderChange, TypeWarehouseOrder,
		TypeFunctionalAck, TypePOAcknowledgment, TypeShipNotice,
		TypeInvoice, TypeInventoryAdvice, TypeRemittance,
		TypeCarrierStatus, TypeReturnAuthorization:
		return true
	}
	return false
}

// FunctionalID returns the GS01 functional identifier code for outbound
// interchanges of this type, or "" for types this engine never generates.
func (t TransactionType) FunctionalID() string {
	switch t {
	case TypePurchaseOrder:
		return "PO"
	case TypePurchaseOrderChange:
		return "PC"
	case TypeWarehouseOrder:
		return "OW"
	case TypeFunctionalAck:
		return "FA"
	case TypePOAcknowledgment:
		return "PR"
	case TypeShipNotice:
		return "SH"
	case TypeInvoice:
		return "IN"
	case TypeInventoryAdvice:
		return "IB"
	}
	return ""
}

// Direction distinguishes generation (OUT) from parsing (IN).
type Direction string

const (
	DirectionInbound  Direction = "IN"
	DirectionOutbound Direction = "OUT"
)

// PartyRole is an N101 entity identifier code.
type PartyRole string

const (
	RoleShipTo   PartyRole = "ST"
	RoleBillTo   PartyRole = "BT"
	RoleBuyer    PartyRole = "BY"
	RoleVendor   PartyRole = "VN"
	RoleRemitTo  PartyRole = "RE"
	RolePayer    PartyRole = "PR"
	RoleRemitter PartyRole = "RM"
)

// AckStatus is the canonical acknowledgment state. It is deliberately
// three-valued everywhere; transaction sets whose wire encoding only
// distinguishes accept/reject collapse AcceptedWithChanges at the wire
// boundary, never in the document model.
type AckStatus string

const (
	AckAccepted            AckStatus = "Accepted"
	AckRejected            AckStatus = "Rejected"
	AckAcceptedWithChanges AckStatus = "AcceptedWithChanges"
)

// Valid reports whether s is a known acknowledgment status.
func (s AckStatus) Valid() bool {
	switch s {
	case AckAccepted, AckRejected, AckAcceptedWithChanges:
		return true
	}
	return false
}

// ItemAckStatus is the per-line acknowledgment state on a 855.
type ItemAckStatus string

const (
	ItemAccepted    ItemAckStatus = "Accepted"
	ItemRejected    ItemAckStatus = "Rejected"
	ItemBackordered ItemAckStatus = "Backordered"
)

// Valid reports whether s is a known line item status.
func (s ItemAckStatus) Valid() bool {
	switch s {
	case ItemAccepted, ItemRejected, ItemBackordered:
		return true
	}
	return false
}

// ChangeCode is the POC02 line item change code on a 860.
type ChangeCode string

const (
	ChangeAdd         ChangeCode = "AI"
	ChangeDelete      ChangeCode = "DI"
	ChangeModify      ChangeCode = "CA"
	ChangeQtyDecrease ChangeCode = "QD"
)

// Valid reports whether c is a known change code.
func (c ChangeCode) Valid() bool {
	switch c {
	case ChangeAdd, ChangeDelete, ChangeModify, ChangeQtyDecrease:
		return true
	}
	return false
}

// Address is a postal address attached to a party. All geographic fields
// are optional: generators omit the dependent address segments rather
// than emitting partial ones.
type Address struct {
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"` // location ID, e.g. store or DC number
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country,omitempty"`
}

// HasGeography reports whether the address carries the full city, state,
// and postal triple an N4 segment requires.
func (a Address) HasGeography() bool {
	return a.City != "" && a.State != "" && a.Zip != ""
}

// Party is an address bound to an N101 role within a document.
type Party struct {
	Role PartyRole `json:"role"`
	Address
}
