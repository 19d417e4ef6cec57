package dulprovider

import (
	"fmt"

	"github.com/netdicom/dulstack/pdu/pdu_item"
)

// implementationClassUID and implementationVersionName identify this stack
// in the A-ASSOCIATE-RQ/AC User Information items. P3.7 Annex D.3.3.2.
const (
	implementationClassUID    = "1.2.826.0.1.3680043.10.1235.1"
	implementationVersionName = "NETDICOMSTACK_1"
)

// presentationContext is one negotiated (abstract syntax, transfer syntax)
// pair, keyed by its odd context ID.
type presentationContext struct {
	contextID         byte
	abstractSyntaxUID string
	transferSyntaxUID string
	accepted          bool
}

// contextManager negotiates presentation contexts during the A-ASSOCIATE
// handshake and resolves an abstract syntax UID to its negotiated context ID
// for every P-DATA-TF sent afterward. P3.8 9.3.2.2/9.3.3.2, Annex D.
type contextManager struct {
	label string

	// maxPDUSize is advertised to the peer in this side's User Information
	// item.
	maxPDUSize int

	// peerMaxPDUSize is learned from the peer's User Information item
	// during the handshake; defaults to DefaultMaxPDUSize until then.
	peerMaxPDUSize int

	nextContextID byte

	byContextID         map[byte]*presentationContext
	byAbstractSyntaxUID map[string]*presentationContext
}

func newContextManager(label string) *contextManager {
	return &contextManager{
		label:               label,
		maxPDUSize:          DefaultMaxPDUSize,
		peerMaxPDUSize:      DefaultMaxPDUSize,
		nextContextID:       1,
		byContextID:         make(map[byte]*presentationContext),
		byAbstractSyntaxUID: make(map[string]*presentationContext),
	}
}

func (m *contextManager) userInformationItem() *pdu_item.UserInformationItem {
	return &pdu_item.UserInformationItem{
		Items: []pdu_item.SubItem{
			&pdu_item.UserInformationMaximumLengthItem{MaximumLengthReceived: uint32(m.maxPDUSize)},
			&pdu_item.ImplementationClassUIDSubItem{Name: implementationClassUID},
			&pdu_item.ImplementationVersionNameSubItem{Name: implementationVersionName},
		},
	}
}

func (m *contextManager) extractPeerMaxPDUSize(items []pdu_item.SubItem) {
	for _, item := range items {
		if ui, ok := item.(*pdu_item.UserInformationItem); ok {
			for _, sub := range ui.Items {
				if n, ok := sub.(*pdu_item.UserInformationMaximumLengthItem); ok {
					m.peerMaxPDUSize = int(n.MaximumLengthReceived)
				}
			}
		}
	}
}

// generateAssociateRequest builds the complete item list for an
// A-ASSOCIATE-RQ PDU: the application context, one presentation context per
// proposed SOP class (each offering every given transfer syntax), and this
// side's user information.
func (m *contextManager) generateAssociateRequest(sopClasses, transferSyntaxes []string) []pdu_item.SubItem {
	items := []pdu_item.SubItem{
		&pdu_item.ApplicationContextItem{Name: pdu_item.DefaultApplicationContextItemName},
	}
	for _, sop := range sopClasses {
		contextID := m.nextContextID
		m.nextContextID += 2
		pcItems := []pdu_item.SubItem{
			&pdu_item.AbstractSyntaxSubItem{Name: sop},
		}
		for _, ts := range transferSyntaxes {
			pcItems = append(pcItems, &pdu_item.TransferSyntaxSubItem{Name: ts})
		}
		items = append(items, &pdu_item.PresentationContextItem{
			Type:      pdu_item.ItemTypePresentationContextRequest,
			ContextID: contextID,
			Items:     pcItems,
		})
		ctx := &presentationContext{contextID: contextID, abstractSyntaxUID: sop}
		m.byContextID[contextID] = ctx
		m.byAbstractSyntaxUID[sop] = ctx
	}
	items = append(items, m.userInformationItem())
	return items
}

// onAssociateResponse consumes the item list of an A-ASSOCIATE-AC PDU,
// recording the transfer syntax and acceptance of each presentation context
// this side proposed, and the peer's max PDU size. It returns an error if
// the response names a context ID this side never proposed, or if no
// presentation context was accepted.
func (m *contextManager) onAssociateResponse(items []pdu_item.SubItem) error {
	m.extractPeerMaxPDUSize(items)
	accepted := 0
	for _, item := range items {
		pc, ok := item.(*pdu_item.PresentationContextItem)
		if !ok {
			continue
		}
		ctx, ok := m.byContextID[pc.ContextID]
		if !ok {
			return fmt.Errorf("dulprovider: contextManager(%s): A-ASSOCIATE-AC refers to unknown context ID %d", m.label, pc.ContextID)
		}
		ctx.accepted = pc.Result == 0
		if !ctx.accepted {
			continue
		}
		for _, sub := range pc.Items {
			if ts, ok := sub.(*pdu_item.TransferSyntaxSubItem); ok {
				ctx.transferSyntaxUID = ts.Name
			}
		}
		accepted++
	}
	if accepted == 0 {
		return fmt.Errorf("dulprovider: contextManager(%s): peer accepted no presentation context", m.label)
	}
	return nil
}

// onAssociateRequest consumes the presentation context items of an
// A-ASSOCIATE-RQ PDU and builds the complete A-ASSOCIATE-AC item list:
// application context, one response per proposed context (accepting the
// first transfer syntax offered), and this side's user information. It
// returns an error iff. the peer proposed no presentation context at all.
func (m *contextManager) onAssociateRequest(items []pdu_item.SubItem) ([]pdu_item.SubItem, error) {
	m.extractPeerMaxPDUSize(items)
	responses := []pdu_item.SubItem{
		&pdu_item.ApplicationContextItem{Name: pdu_item.DefaultApplicationContextItemName},
	}
	proposed := 0
	for _, item := range items {
		rq, ok := item.(*pdu_item.PresentationContextItem)
		if !ok {
			continue
		}
		proposed++
		var abstractSyntaxUID, transferSyntaxUID string
		for _, sub := range rq.Items {
			switch n := sub.(type) {
			case *pdu_item.AbstractSyntaxSubItem:
				abstractSyntaxUID = n.Name
			case *pdu_item.TransferSyntaxSubItem:
				if transferSyntaxUID == "" {
					transferSyntaxUID = n.Name
				}
			}
		}
		ctx := &presentationContext{
			contextID:         rq.ContextID,
			abstractSyntaxUID: abstractSyntaxUID,
			transferSyntaxUID: transferSyntaxUID,
			accepted:          transferSyntaxUID != "",
		}
		m.byContextID[ctx.contextID] = ctx
		m.byAbstractSyntaxUID[ctx.abstractSyntaxUID] = ctx

		result := byte(1) // abstract or transfer syntax not supported.
		var responseItems []pdu_item.SubItem
		if ctx.accepted {
			result = 0
			responseItems = []pdu_item.SubItem{&pdu_item.TransferSyntaxSubItem{Name: transferSyntaxUID}}
		}
		responses = append(responses, &pdu_item.PresentationContextItem{
			Type:      pdu_item.ItemTypePresentationContextResponse,
			ContextID: ctx.contextID,
			Result:    result,
			Items:     responseItems,
		})
	}
	if proposed == 0 {
		return nil, fmt.Errorf("dulprovider: contextManager(%s): A-ASSOCIATE-RQ proposed no presentation context", m.label)
	}
	responses = append(responses, m.userInformationItem())
	return responses, nil
}

// lookupByAbstractSyntaxUID returns the negotiated context for an abstract
// syntax UID, for use when fragmenting an outgoing DIMSE message into
// P-DATA-TF PDUs.
func (m *contextManager) lookupByAbstractSyntaxUID(name string) (*presentationContext, error) {
	ctx, ok := m.byAbstractSyntaxUID[name]
	if !ok {
		return nil, fmt.Errorf("dulprovider: contextManager(%s): no negotiated presentation context for abstract syntax %q", m.label, name)
	}
	return ctx, nil
}
