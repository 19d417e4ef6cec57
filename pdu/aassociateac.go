package pdu

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/netdicom/dulstack/pdu/pdu_item"
	"github.com/suyashkumar/dicom/pkg/dicomio"
)

// AAssociateAC is the accepting response to an A-ASSOCIATE-RQ. P3.8 9.3.3.
// Wire layout is identical to AAssociateRQ; CalledAETitle/CallingAETitle are
// echoed back from the request per P3.8 9.3.3 Note 5.
type AAssociateAC struct {
	ProtocolVersion uint16
	CalledAETitle   string
	CallingAETitle  string
	Items           []pdu_item.SubItem
}

func (AAssociateAC) Read(d *dicomio.Reader) (PDU, error) {
	pdu := &AAssociateAC{}
	var err error
	pdu.ProtocolVersion, err = d.ReadUInt16()
	if err != nil {
		return nil, err
	}
	d.Skip(2)
	pdu.CalledAETitle, err = d.ReadString(16)
	if err != nil {
		return nil, err
	}
	pdu.CallingAETitle, err = d.ReadString(16)
	if err != nil {
		return nil, err
	}
	d.Skip(8 * 4)
	for !d.IsLimitExhausted() {
		item, err := pdu_item.DecodeSubItem(d)
		if err != nil {
			break
		}
		pdu.Items = append(pdu.Items, item)
	}
	return pdu, nil
}

func (pdu *AAssociateAC) Write() ([]byte, error) {
	var buf bytes.Buffer
	e := dicomio.NewWriter(&buf, binary.BigEndian, false)
	if err := e.WriteUInt16(pdu.ProtocolVersion); err != nil {
		return nil, err
	}
	if err := e.WriteZeros(2); err != nil {
		return nil, err
	}
	if err := e.WriteString(fillString(pdu.CalledAETitle)); err != nil {
		return nil, err
	}
	if err := e.WriteString(fillString(pdu.CallingAETitle)); err != nil {
		return nil, err
	}
	if err := e.WriteZeros(8 * 4); err != nil {
		return nil, err
	}
	for _, item := range pdu.Items {
		if err := item.Write(e); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (pdu *AAssociateAC) String() string {
	return fmt.Sprintf("A_ASSOCIATE_AC{version:%v called:'%v' calling:'%v' items:%s}",
		pdu.ProtocolVersion, pdu.CalledAETitle, pdu.CallingAETitle, pdu_item.SubItemListString(pdu.Items))
}
