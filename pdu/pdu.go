// Package pdu implements the DICOM Upper-Layer PDUs: A-ASSOCIATE-RQ/AC/RJ,
// P-DATA-TF, A-RELEASE-RQ/RP, and A-ABORT. P3.8 9.3.
package pdu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/suyashkumar/dicom/pkg/dicomio"
)

// PDU is the common interface for every Upper-Layer PDU.
type PDU interface {
	Write() ([]byte, error)
	String() string
}

// PDU-Type field values. P3.8 Table 9-1 through 9-25.
const (
	TypeAAssociateRQ = 0x01
	TypeAAssociateAC = 0x02
	TypeAAssociateRJ = 0x03
	TypePDataTF      = 0x04
	TypeAReleaseRQ   = 0x05
	TypeAReleaseRP   = 0x06
	TypeAAbort       = 0x07
)

// CurrentProtocolVersion is the only Upper-Layer protocol version this stack
// speaks. P3.8 9.3.2.
const CurrentProtocolVersion uint16 = 1

// A-ASSOCIATE-RJ Result field values. P3.8 9.3.4.
const (
	ResultRejectedPermanent = 1
	ResultRejectedTransient = 2
)

// A-ASSOCIATE-RJ Source field values. P3.8 9.3.4.
const (
	SourceULServiceUser                 = 1
	SourceULServiceProviderACSE          = 2
	SourceULServiceProviderPresentation = 3
)

// A-ASSOCIATE-RJ Reason field values, conditioned on Source. P3.8 9.3.4.
const (
	ReasonNone                                = 1
	ReasonApplicationContextNameNotSupported  = 2
	ReasonCallingAETitleNotRecognized         = 3
	ReasonCalledAETitleNotRecognized          = 7
)

// AbortReasonType enumerates the A-ABORT Source/Reason byte. P3.8 9.3.8.
type AbortReasonType byte

const (
	AbortReasonNotSpecified         AbortReasonType = 0
	AbortReasonUnexpectedPDU        AbortReasonType = 2
	AbortReasonUnrecognizedPDUParam AbortReasonType = 4
	AbortReasonUnexpectedSessState  AbortReasonType = 5
	AbortReasonPDUParamOutOfRange   AbortReasonType = 6
	AbortReasonUnsupportedPDUParam  AbortReasonType = 7
)

// AbortSourceType distinguishes who initiated an A-ABORT. P3.8 9.3.8.
type AbortSourceType byte

const (
	AbortSourceServiceUser               AbortSourceType = 0
	AbortSourceServiceProvider           AbortSourceType = 2
)

// fillString pads s with trailing spaces (or truncates it) to the 16-byte
// fixed width the Upper-Layer protocol requires for AE titles. P3.8 9.3.2.
func fillString(s string) string {
	const width = 16
	if len(s) > width {
		return s[:width]
	}
	for len(s) < width {
		s += " "
	}
	return s
}

func encodePDUHeader(w io.Writer, pduType byte, length uint32) error {
	if _, err := w.Write([]byte{pduType, 0}); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, length)
}

// EncodePDU serializes v into the full 6-byte-header + payload PDU wire
// format.
func EncodePDU(v PDU) ([]byte, error) {
	payload, err := v.Write()
	if err != nil {
		return nil, err
	}
	var pduType byte
	switch v.(type) {
	case *AAssociateRQ:
		pduType = TypeAAssociateRQ
	case *AAssociateAC:
		pduType = TypeAAssociateAC
	case *AAssociateRj:
		pduType = TypeAAssociateRJ
	case *PDataTf:
		pduType = TypePDataTF
	case *AReleaseRq:
		pduType = TypeAReleaseRQ
	case *AReleaseRp:
		pduType = TypeAReleaseRP
	case *AAbort:
		pduType = TypeAAbort
	default:
		return nil, fmt.Errorf("pdu: EncodePDU: unknown PDU type %T", v)
	}
	var buf bytes.Buffer
	if err := encodePDUHeader(&buf, pduType, uint32(len(payload))); err != nil {
		return nil, err
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

// ReadPDU reads one complete Upper-Layer PDU from in, rejecting a declared
// length of twice maxPDUSize or more as a malformed or hostile peer.
func ReadPDU(in io.Reader, maxPDUSize int) (PDU, error) {
	var header [6]byte
	if _, err := io.ReadFull(in, header[:]); err != nil {
		return nil, err
	}
	pduType := header[0]
	length := binary.BigEndian.Uint32(header[2:6])
	if int64(length) >= int64(maxPDUSize)*2 {
		return nil, fmt.Errorf("pdu: ReadPDU: bogus PDU length %d (max %d)", length, maxPDUSize)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(in, payload); err != nil {
		return nil, err
	}
	d := dicomio.NewReader(bytes.NewReader(payload), binary.BigEndian, false, int64(length))
	var v PDU
	var err error
	switch pduType {
	case TypeAAssociateRQ:
		v, err = AAssociateRQ{}.Read(d)
	case TypeAAssociateAC:
		v, err = AAssociateAC{}.Read(d)
	case TypeAAssociateRJ:
		v, err = AAssociateRj{}.Read(d)
	case TypePDataTF:
		v, err = PDataTf{}.Read(d)
	case TypeAReleaseRQ:
		v, err = AReleaseRq{}.Read(d)
	case TypeAReleaseRP:
		v, err = AReleaseRp{}.Read(d)
	case TypeAAbort:
		v, err = AAbort{}.Read(d)
	default:
		return nil, fmt.Errorf("pdu: ReadPDU: unknown PDU type 0x%x", pduType)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
