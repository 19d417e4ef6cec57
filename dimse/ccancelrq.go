package dimse

import (
	"fmt"
	"io"

	"github.com/netdicom/dulstack/commandset"
	"github.com/suyashkumar/dicom"
)

// CCancelRq requests cancellation of an outstanding C-FIND, C-GET, or
// C-MOVE operation. P3.7 9.3.2.3. It never carries a data set and, unlike
// every other *Rsp type in this package, is not itself a response: its
// (0000,0120) element names the message ID of the operation being
// cancelled, not a message this request is responding to, so it is named
// MessageIDBeingCancelled here rather than MessageIDBeingRespondedTo.
type CCancelRq struct {
	MessageIDBeingCancelled MessageID
	Extra                   []*dicom.Element // Unparsed elements
}

func (v *CCancelRq) Encode(e io.Writer) error {
	elems := []*dicom.Element{}

	elem, err := NewElement(commandset.CommandField, v.CommandField())
	if err != nil {
		return fmt.Errorf("CCancelRq.Encode: failed to create CommandField element: %w", err)
	}
	elems = append(elems, elem)

	elem, err = NewElement(commandset.MessageIDBeingRespondedTo, v.MessageIDBeingCancelled)
	if err != nil {
		return fmt.Errorf("CCancelRq.Encode: failed to create MessageIDBeingRespondedTo element: %w", err)
	}
	elems = append(elems, elem)

	elem, err = NewElement(commandset.CommandDataSetType, uint16(CommandDataSetTypeNull))
	if err != nil {
		return fmt.Errorf("CCancelRq.Encode: failed to create CommandDataSetType element: %w", err)
	}
	elems = append(elems, elem)

	elems = append(elems, v.Extra...)

	if err := EncodeElements(e, elems); err != nil {
		return fmt.Errorf("CCancelRq.Encode: failed to encode elements: %w", err)
	}
	return nil
}

func (v *CCancelRq) HasData() bool {
	return false
}

func (v *CCancelRq) CommandField() uint16 {
	return CommandFieldCCancelRq
}

func (v *CCancelRq) GetMessageID() MessageID {
	return v.MessageIDBeingCancelled
}

func (v *CCancelRq) GetStatus() *Status {
	return nil
}

func (v *CCancelRq) String() string {
	return fmt.Sprintf("CCancelRq{MessageIDBeingCancelled:%v}", v.MessageIDBeingCancelled)
}

func (CCancelRq) decode(d *MessageDecoder) (*CCancelRq, error) {
	v := &CCancelRq{}
	var err error

	v.MessageIDBeingCancelled, err = d.GetUInt16(commandset.MessageIDBeingRespondedTo, RequiredElement)
	if err != nil {
		return nil, fmt.Errorf("CCancelRq.decode: failed to decode MessageIDBeingCancelled: %w", err)
	}

	if _, err := d.GetCommandDataSetType(); err != nil {
		return nil, fmt.Errorf("CCancelRq.decode: failed to decode CommandDataSetType: %w", err)
	}

	v.Extra = d.UnparsedElements()
	return v, nil
}
