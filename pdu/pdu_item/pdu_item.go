// Package pdu_item implements the association-negotiation sub-items carried
// inside A-ASSOCIATE-RQ/AC PDUs and the presentation-data-value items
// carried inside P-DATA-TF PDUs. P3.8 9.3.2/9.3.3 and Annex D.
package pdu_item

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/suyashkumar/dicom/pkg/dicomio"
)

// SubItem is the common interface for every association sub-item.
type SubItem interface {
	Write(w *dicomio.Writer) error
	String() string
}

// Possible Type field values for SubItem.
const (
	ItemTypeApplicationContext           = 0x10
	ItemTypePresentationContextRequest   = 0x20
	ItemTypePresentationContextResponse  = 0x21
	ItemTypeAbstractSyntax               = 0x30
	ItemTypeTransferSyntax               = 0x40
	ItemTypeUserInformation              = 0x50
	ItemTypeUserInformationMaximumLength = 0x51
	ItemTypeImplementationClassUID       = 0x52
	ItemTypeAsynchronousOperationsWindow = 0x53
	ItemTypeImplementationVersionName    = 0x55
)

// DefaultApplicationContextItemName is the well-known DICOM application
// context name (P3.7 Annex A.2.1).
const DefaultApplicationContextItemName = "1.2.840.10008.3.1.1.1"

func encodeSubItemHeader(w *dicomio.Writer, itemType byte, length uint16) error {
	if err := w.WriteByte(itemType); err != nil {
		return err
	}
	if err := w.WriteZeros(1); err != nil {
		return err
	}
	return w.WriteUInt16(length)
}

func readSubItemHeader(d *dicomio.Reader) (itemType byte, length uint16, err error) {
	itemType, err = d.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	if err = d.Skip(1); err != nil {
		return 0, 0, err
	}
	length, err = d.ReadUInt16()
	return itemType, length, err
}

// DecodeSubItem reads one sub-item from d, dispatching on its type byte.
func DecodeSubItem(d *dicomio.Reader) (SubItem, error) {
	itemType, length, err := readSubItemHeader(d)
	if err != nil {
		return nil, err
	}
	switch itemType {
	case ItemTypeApplicationContext:
		return decodeApplicationContextItem(d, length)
	case ItemTypeAbstractSyntax:
		return decodeAbstractSyntaxSubItem(d, length)
	case ItemTypeTransferSyntax:
		return decodeTransferSyntaxSubItem(d, length)
	case ItemTypePresentationContextRequest, ItemTypePresentationContextResponse:
		return decodePresentationContextItem(d, itemType, length)
	case ItemTypeUserInformation:
		return decodeUserInformationItem(d, length)
	case ItemTypeUserInformationMaximumLength:
		return decodeUserInformationMaximumLengthItem(d, length)
	case ItemTypeImplementationClassUID:
		return decodeImplementationClassUIDSubItem(d, length)
	case ItemTypeAsynchronousOperationsWindow:
		return decodeAsynchronousOperationsWindowSubItem(d, length)
	case ItemTypeImplementationVersionName:
		return decodeImplementationVersionNameSubItem(d, length)
	default:
		return decodeSubItemUnsupported(d, itemType, length)
	}
}

// readBoundedBytes reads exactly length bytes and returns a Reader scoped to
// just those bytes, so nested decoders never run past their declared length.
func readBoundedBytes(d *dicomio.Reader, length uint16) (*dicomio.Reader, error) {
	raw, err := d.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}
	return dicomio.NewReader(bytes.NewReader(raw), binary.BigEndian, false, int64(len(raw))), nil
}

func subItemListString(items []SubItem) string {
	buf := bytes.Buffer{}
	buf.WriteString("[")
	for i, item := range items {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(item.String())
	}
	buf.WriteString("]")
	return buf.String()
}

// SubItemListString renders a slice of sub-items for debug output.
func SubItemListString(items []SubItem) string {
	return subItemListString(items)
}

// subItemWithName backs every sub-item whose payload is a bare ASCII string
// (application context name, abstract/transfer syntax UID, implementation
// class UID, implementation version name).
type subItemWithName struct {
	Name string
}

func encodeSubItemWithName(w *dicomio.Writer, itemType byte, name string) error {
	if err := encodeSubItemHeader(w, itemType, uint16(len(name))); err != nil {
		return err
	}
	return w.WriteBytes([]byte(name))
}

func decodeSubItemWithName(d *dicomio.Reader, length uint16) (string, error) {
	return d.ReadString(int(length))
}

// ApplicationContextItem names the DICOM application context (always
// DefaultApplicationContextItemName for this stack).
type ApplicationContextItem subItemWithName

func decodeApplicationContextItem(d *dicomio.Reader, length uint16) (*ApplicationContextItem, error) {
	name, err := decodeSubItemWithName(d, length)
	if err != nil {
		return nil, err
	}
	return &ApplicationContextItem{Name: name}, nil
}

func (v *ApplicationContextItem) Write(w *dicomio.Writer) error {
	return encodeSubItemWithName(w, ItemTypeApplicationContext, v.Name)
}

func (v *ApplicationContextItem) String() string {
	return fmt.Sprintf("applicationcontext{name: %q}", v.Name)
}

// AbstractSyntaxSubItem carries one negotiated abstract syntax (SOP class) UID.
type AbstractSyntaxSubItem subItemWithName

func decodeAbstractSyntaxSubItem(d *dicomio.Reader, length uint16) (*AbstractSyntaxSubItem, error) {
	name, err := decodeSubItemWithName(d, length)
	if err != nil {
		return nil, err
	}
	return &AbstractSyntaxSubItem{Name: name}, nil
}

func (v *AbstractSyntaxSubItem) Write(w *dicomio.Writer) error {
	return encodeSubItemWithName(w, ItemTypeAbstractSyntax, v.Name)
}

func (v *AbstractSyntaxSubItem) String() string {
	return fmt.Sprintf("abstractsyntax{name: %q}", v.Name)
}

// TransferSyntaxSubItem carries one negotiated transfer syntax UID.
type TransferSyntaxSubItem subItemWithName

func decodeTransferSyntaxSubItem(d *dicomio.Reader, length uint16) (*TransferSyntaxSubItem, error) {
	name, err := decodeSubItemWithName(d, length)
	if err != nil {
		return nil, err
	}
	return &TransferSyntaxSubItem{Name: name}, nil
}

func (v *TransferSyntaxSubItem) Write(w *dicomio.Writer) error {
	return encodeSubItemWithName(w, ItemTypeTransferSyntax, v.Name)
}

func (v *TransferSyntaxSubItem) String() string {
	return fmt.Sprintf("transfersyntax{name: %q}", v.Name)
}

// PresentationContextItem negotiates one (abstract syntax, transfer syntax)
// pair under a caller-chosen odd context ID. P3.8 9.3.2.2 (request) and
// 9.3.3.2 (response).
type PresentationContextItem struct {
	Type      byte // ItemTypePresentationContext{Request,Response}
	ContextID byte
	Result    byte // Only meaningful when Type == ItemTypePresentationContextResponse
	Items     []SubItem
}

func decodePresentationContextItem(d *dicomio.Reader, itemType byte, length uint16) (*PresentationContextItem, error) {
	sub, err := readBoundedBytes(d, length)
	if err != nil {
		return nil, err
	}
	v := &PresentationContextItem{Type: itemType}
	v.ContextID, err = sub.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := sub.Skip(1); err != nil {
		return nil, err
	}
	v.Result, err = sub.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := sub.Skip(1); err != nil {
		return nil, err
	}
	for !sub.IsLimitExhausted() {
		item, err := DecodeSubItem(sub)
		if err != nil {
			break
		}
		v.Items = append(v.Items, item)
	}
	if v.ContextID%2 != 1 {
		return nil, fmt.Errorf("pdu_item: PresentationContextItem ID must be odd, got 0x%x", v.ContextID)
	}
	return v, nil
}

func (v *PresentationContextItem) Write(w *dicomio.Writer) error {
	if v.Type != ItemTypePresentationContextRequest && v.Type != ItemTypePresentationContextResponse {
		return fmt.Errorf("pdu_item: invalid PresentationContextItem.Type 0x%x", v.Type)
	}
	var buf bytes.Buffer
	itemWriter := dicomio.NewWriter(&buf, binary.BigEndian, false)
	for _, item := range v.Items {
		if err := item.Write(itemWriter); err != nil {
			return err
		}
	}
	if err := encodeSubItemHeader(w, v.Type, uint16(4+buf.Len())); err != nil {
		return err
	}
	if err := w.WriteByte(v.ContextID); err != nil {
		return err
	}
	if err := w.WriteZeros(1); err != nil {
		return err
	}
	if err := w.WriteByte(v.Result); err != nil {
		return err
	}
	if err := w.WriteZeros(1); err != nil {
		return err
	}
	return w.WriteBytes(buf.Bytes())
}

func (v *PresentationContextItem) String() string {
	kind := "rq"
	if v.Type == ItemTypePresentationContextResponse {
		kind = "ac"
	}
	return fmt.Sprintf("presentationcontext%s{id:%d result:%d items:%s}", kind, v.ContextID, v.Result, subItemListString(v.Items))
}

// UserInformationItem wraps the negotiated user-information sub-items
// (max PDU length, implementation class UID, etc). P3.8 9.3.2.3, Annex D.
type UserInformationItem struct {
	Items []SubItem
}

func decodeUserInformationItem(d *dicomio.Reader, length uint16) (*UserInformationItem, error) {
	sub, err := readBoundedBytes(d, length)
	if err != nil {
		return nil, err
	}
	v := &UserInformationItem{}
	for !sub.IsLimitExhausted() {
		item, err := DecodeSubItem(sub)
		if err != nil {
			break
		}
		v.Items = append(v.Items, item)
	}
	return v, nil
}

func (v *UserInformationItem) Write(w *dicomio.Writer) error {
	var buf bytes.Buffer
	itemWriter := dicomio.NewWriter(&buf, binary.BigEndian, false)
	for _, item := range v.Items {
		if err := item.Write(itemWriter); err != nil {
			return err
		}
	}
	if err := encodeSubItemHeader(w, ItemTypeUserInformation, uint16(buf.Len())); err != nil {
		return err
	}
	return w.WriteBytes(buf.Bytes())
}

func (v *UserInformationItem) String() string {
	return fmt.Sprintf("userinformationitem{items: %s}", subItemListString(v.Items))
}

// UserInformationMaximumLengthItem advertises the max PDU length the sender
// will accept. P3.7 Annex D.1.
type UserInformationMaximumLengthItem struct {
	MaximumLengthReceived uint32
}

func decodeUserInformationMaximumLengthItem(d *dicomio.Reader, length uint16) (*UserInformationMaximumLengthItem, error) {
	if length != 4 {
		return nil, fmt.Errorf("pdu_item: UserInformationMaximumLengthItem must be 4 bytes, got %d", length)
	}
	v, err := d.ReadUInt32()
	if err != nil {
		return nil, err
	}
	return &UserInformationMaximumLengthItem{MaximumLengthReceived: v}, nil
}

func (v *UserInformationMaximumLengthItem) Write(w *dicomio.Writer) error {
	if err := encodeSubItemHeader(w, ItemTypeUserInformationMaximumLength, 4); err != nil {
		return err
	}
	return w.WriteUInt32(v.MaximumLengthReceived)
}

func (v *UserInformationMaximumLengthItem) String() string {
	return fmt.Sprintf("userinformationmaximumlengthitem{%d}", v.MaximumLengthReceived)
}

// ImplementationClassUIDSubItem identifies the implementation. P3.7 Annex D.3.3.2.1.
type ImplementationClassUIDSubItem subItemWithName

func decodeImplementationClassUIDSubItem(d *dicomio.Reader, length uint16) (*ImplementationClassUIDSubItem, error) {
	name, err := decodeSubItemWithName(d, length)
	if err != nil {
		return nil, err
	}
	return &ImplementationClassUIDSubItem{Name: name}, nil
}

func (v *ImplementationClassUIDSubItem) Write(w *dicomio.Writer) error {
	return encodeSubItemWithName(w, ItemTypeImplementationClassUID, v.Name)
}

func (v *ImplementationClassUIDSubItem) String() string {
	return fmt.Sprintf("implementationclassuid{name: %q}", v.Name)
}

// ImplementationVersionNameSubItem names the implementation version. P3.7 Annex D.3.3.2.3.
type ImplementationVersionNameSubItem subItemWithName

func decodeImplementationVersionNameSubItem(d *dicomio.Reader, length uint16) (*ImplementationVersionNameSubItem, error) {
	name, err := decodeSubItemWithName(d, length)
	if err != nil {
		return nil, err
	}
	return &ImplementationVersionNameSubItem{Name: name}, nil
}

func (v *ImplementationVersionNameSubItem) Write(w *dicomio.Writer) error {
	return encodeSubItemWithName(w, ItemTypeImplementationVersionName, v.Name)
}

func (v *ImplementationVersionNameSubItem) String() string {
	return fmt.Sprintf("implementationversionname{name: %q}", v.Name)
}

// AsynchronousOperationsWindowSubItem negotiates invoked/performed operation
// windows. P3.7 Annex D.3.3.3.1. Neither this stack's requestor nor acceptor
// asks for async operations, but the item must still round-trip if a peer
// sends one.
type AsynchronousOperationsWindowSubItem struct {
	MaxOpsInvoked   uint16
	MaxOpsPerformed uint16
}

func decodeAsynchronousOperationsWindowSubItem(d *dicomio.Reader, length uint16) (*AsynchronousOperationsWindowSubItem, error) {
	invoked, err := d.ReadUInt16()
	if err != nil {
		return nil, err
	}
	performed, err := d.ReadUInt16()
	if err != nil {
		return nil, err
	}
	return &AsynchronousOperationsWindowSubItem{MaxOpsInvoked: invoked, MaxOpsPerformed: performed}, nil
}

func (v *AsynchronousOperationsWindowSubItem) Write(w *dicomio.Writer) error {
	if err := encodeSubItemHeader(w, ItemTypeAsynchronousOperationsWindow, 4); err != nil {
		return err
	}
	if err := w.WriteUInt16(v.MaxOpsInvoked); err != nil {
		return err
	}
	return w.WriteUInt16(v.MaxOpsPerformed)
}

func (v *AsynchronousOperationsWindowSubItem) String() string {
	return fmt.Sprintf("asynchronousopswindow{invoked:%d performed:%d}", v.MaxOpsInvoked, v.MaxOpsPerformed)
}

// SubItemUnsupported preserves the raw bytes of a sub-item type this stack
// does not interpret, so it still round-trips through Write.
type SubItemUnsupported struct {
	Type byte
	Data []byte
}

func decodeSubItemUnsupported(d *dicomio.Reader, itemType byte, length uint16) (*SubItemUnsupported, error) {
	data, err := d.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}
	return &SubItemUnsupported{Type: itemType, Data: data}, nil
}

func (v *SubItemUnsupported) Write(w *dicomio.Writer) error {
	if err := encodeSubItemHeader(w, v.Type, uint16(len(v.Data))); err != nil {
		return err
	}
	return w.WriteBytes(v.Data)
}

func (v *SubItemUnsupported) String() string {
	return fmt.Sprintf("subitemunsupported{type:0x%x data:%dbytes}", v.Type, len(v.Data))
}

// PresentationDataValueItem is one PDV inside a P-DATA-TF PDU. P3.8 9.3.2.2.1/E.2.
//
// The control-header bit assignment here (bit0 = command/data, bit1 = last
// fragment) follows the legal-value enumeration {0,1,2,3} and every
// reference decoder, not the inverted reading some prose summaries give.
type PresentationDataValueItem struct {
	ContextID byte
	Command   bool // true: command-set bytes. false: data-set bytes.
	Last      bool // true: final fragment of this PDV stream.
	Value     []byte
}

// ReadPresentationDataValueItem reads one length-prefixed PDV.
func ReadPresentationDataValueItem(d *dicomio.Reader) (PresentationDataValueItem, error) {
	var item PresentationDataValueItem
	length, err := d.ReadUInt32()
	if err != nil {
		return item, err
	}
	if length < 2 {
		return item, fmt.Errorf("pdu_item: PresentationDataValueItem length %d too small", length)
	}
	item.ContextID, err = d.ReadByte()
	if err != nil {
		return item, err
	}
	header, err := d.ReadByte()
	if err != nil {
		return item, err
	}
	if header&0xfc != 0 {
		return item, fmt.Errorf("pdu_item: illegal PresentationDataValueItem control header 0x%x", header)
	}
	item.Command = header&1 != 0
	item.Last = header&2 != 0
	item.Value, err = d.ReadBytes(int(length - 2))
	return item, err
}

func (v *PresentationDataValueItem) Write(w *dicomio.Writer) error {
	var header byte
	if v.Command {
		header |= 1
	}
	if v.Last {
		header |= 2
	}
	if err := w.WriteUInt32(uint32(2 + len(v.Value))); err != nil {
		return err
	}
	if err := w.WriteByte(v.ContextID); err != nil {
		return err
	}
	if err := w.WriteByte(header); err != nil {
		return err
	}
	return w.WriteBytes(v.Value)
}

func (v *PresentationDataValueItem) String() string {
	return fmt.Sprintf("presentationdatavalue{context:%d cmd:%v last:%v value:%dbytes}", v.ContextID, v.Command, v.Last, len(v.Value))
}
