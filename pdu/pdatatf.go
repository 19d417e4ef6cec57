package pdu

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/netdicom/dulstack/pdu/pdu_item"
	"github.com/suyashkumar/dicom/pkg/dicomio"
)

// PresentationDataValueItem re-exports pdu_item's PDV type so statemachine
// and command_assembler can refer to it as pdu.PresentationDataValueItem,
// matching how pdu.PDataTf carries them directly.
type PresentationDataValueItem = pdu_item.PresentationDataValueItem

// PDataTf carries one or more presentation-data-value fragments. P3.8 9.3.5.
type PDataTf struct {
	Items []PresentationDataValueItem
}

func (PDataTf) Read(d *dicomio.Reader) (PDU, error) {
	pdu := &PDataTf{}
	for !d.IsLimitExhausted() {
		item, err := pdu_item.ReadPresentationDataValueItem(d)
		if err != nil {
			break
		}
		pdu.Items = append(pdu.Items, item)
	}
	return pdu, nil
}

func (pdu *PDataTf) Write() ([]byte, error) {
	var buf bytes.Buffer
	e := dicomio.NewWriter(&buf, binary.BigEndian, false)
	for _, item := range pdu.Items {
		item := item
		if err := item.Write(e); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (pdu *PDataTf) String() string {
	return fmt.Sprintf("P_DATA_TF{items: %d}", len(pdu.Items))
}
