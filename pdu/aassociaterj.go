package pdu

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/suyashkumar/dicom/pkg/dicomio"
)

// AAssociateRj is the rejecting response to an A-ASSOCIATE-RQ. P3.8 9.3.4.
type AAssociateRj struct {
	Result byte
	Source byte
	Reason byte
}

func (AAssociateRj) Read(d *dicomio.Reader) (PDU, error) {
	pdu := &AAssociateRj{}
	d.Skip(1) // Reserved
	var err error
	pdu.Result, err = d.ReadByte()
	if err != nil {
		return nil, err
	}
	pdu.Source, err = d.ReadByte()
	if err != nil {
		return nil, err
	}
	pdu.Reason, err = d.ReadByte()
	if err != nil {
		return nil, err
	}
	return pdu, nil
}

func (pdu *AAssociateRj) Write() ([]byte, error) {
	var buf bytes.Buffer
	e := dicomio.NewWriter(&buf, binary.BigEndian, false)
	if err := e.WriteZeros(1); err != nil {
		return nil, err
	}
	if err := e.WriteByte(pdu.Result); err != nil {
		return nil, err
	}
	if err := e.WriteByte(pdu.Source); err != nil {
		return nil, err
	}
	if err := e.WriteByte(pdu.Reason); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pdu *AAssociateRj) String() string {
	return fmt.Sprintf("A_ASSOCIATE_RJ{result:%d source:%d reason:%d}", pdu.Result, pdu.Source, pdu.Reason)
}
