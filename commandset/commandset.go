// Package commandset holds the local tag schema for DIMSE command-set
// elements (group 0x0000). Every tag a command message reads or writes is
// declared here, instead of relying on a shared global data dictionary, so
// the full set of legal command elements is visible in one place.
package commandset

import "github.com/suyashkumar/dicom/pkg/tag"

// Command-set element tags. P3.7 Annex E.
var (
	CommandGroupLength                   = tag.Tag{Group: 0x0000, Element: 0x0000}
	AffectedSOPClassUID                  = tag.Tag{Group: 0x0000, Element: 0x0002}
	RequestedSOPClassUID                 = tag.Tag{Group: 0x0000, Element: 0x0003}
	CommandField                         = tag.Tag{Group: 0x0000, Element: 0x0100}
	MessageID                            = tag.Tag{Group: 0x0000, Element: 0x0110}
	MessageIDBeingRespondedTo            = tag.Tag{Group: 0x0000, Element: 0x0120}
	MoveDestination                      = tag.Tag{Group: 0x0000, Element: 0x0600}
	Priority                             = tag.Tag{Group: 0x0000, Element: 0x0700}
	CommandDataSetType                   = tag.Tag{Group: 0x0000, Element: 0x0800}
	Status                               = tag.Tag{Group: 0x0000, Element: 0x0900}
	OffendingElement                     = tag.Tag{Group: 0x0000, Element: 0x0901}
	ErrorComment                         = tag.Tag{Group: 0x0000, Element: 0x0902}
	ErrorID                              = tag.Tag{Group: 0x0000, Element: 0x0903}
	AffectedSOPInstanceUID               = tag.Tag{Group: 0x0000, Element: 0x1000}
	RequestedSOPInstanceUID              = tag.Tag{Group: 0x0000, Element: 0x1001}
	EventTypeID                          = tag.Tag{Group: 0x0000, Element: 0x1002}
	AttributeIdentifierList              = tag.Tag{Group: 0x0000, Element: 0x1005}
	ActionTypeID                         = tag.Tag{Group: 0x0000, Element: 0x1008}
	NumberOfRemainingSuboperations       = tag.Tag{Group: 0x0000, Element: 0x1020}
	NumberOfCompletedSuboperations       = tag.Tag{Group: 0x0000, Element: 0x1021}
	NumberOfFailedSuboperations          = tag.Tag{Group: 0x0000, Element: 0x1022}
	NumberOfWarningSuboperations         = tag.Tag{Group: 0x0000, Element: 0x1023}
	MoveOriginatorApplicationEntityTitle = tag.Tag{Group: 0x0000, Element: 0x1030}
	MoveOriginatorMessageID              = tag.Tag{Group: 0x0000, Element: 0x1031}
)

// Priority field values. P3.7 E.1.
const (
	PriorityLow    = 0x0002
	PriorityMedium = 0x0000
	PriorityHigh   = 0x0001
)

// CommandDataSetType field sentinel values. P3.7 E.1.
const (
	DataSetTypeNull    = 0x0101 // No data set follows the command set.
	DataSetTypeNonNull = 0x0001 // A data set follows the command set.
)

// SetLength returns the CommandGroupLength (UL) value for a command set whose
// elements after the group length element encode to length bytes, per the
// CommandGroupLength invariant (P3.7 E.1). It does not touch any element
// itself.
func SetLength(length int) uint32 {
	return uint32(length)
}
