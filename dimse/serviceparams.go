package dimse

// Service parameter objects give callers a typed, application-level view of
// a DIMSE exchange instead of requiring them to build/inspect command-set
// messages directly. Each pairs with its DIMSE message variant via
// FromParams (building the wire message) and ToParams (extracting the
// application view from a decoded message).

// CEchoServiceParameters models a C-ECHO request/response pair. P3.7 9.1.5.
type CEchoServiceParameters struct {
	AffectedSOPClassUID       string
	MessageID                 MessageID
	MessageIDBeingRespondedTo MessageID
	Status                    Status
}

func (p CEchoServiceParameters) FromParamsRq() *CEchoRq {
	return &CEchoRq{
		AffectedSOPClassUID: p.AffectedSOPClassUID,
		MessageID:           p.MessageID,
		CommandDataSetType:  CommandDataSetTypeNull,
	}
}

func (p CEchoServiceParameters) FromParamsRsp() *CEchoRsp {
	return &CEchoRsp{
		AffectedSOPClassUID:       p.AffectedSOPClassUID,
		MessageIDBeingRespondedTo: p.MessageIDBeingRespondedTo,
		CommandDataSetType:        CommandDataSetTypeNull,
		Status:                    p.Status,
	}
}

func (p *CEchoServiceParameters) ToParamsRq(v *CEchoRq) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageID = v.MessageID
}

func (p *CEchoServiceParameters) ToParamsRsp(v *CEchoRsp) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageIDBeingRespondedTo = v.MessageIDBeingRespondedTo
	p.Status = v.Status
}

// CStoreServiceParameters models a C-STORE request/response pair. P3.7 9.1.1.
type CStoreServiceParameters struct {
	AffectedSOPClassUID                  string
	MessageID                            MessageID
	MessageIDBeingRespondedTo            MessageID
	Priority                             uint16
	AffectedSOPInstanceUID               string
	MoveOriginatorApplicationEntityTitle string
	MoveOriginatorMessageID              MessageID
	Status                               Status
}

func (p CStoreServiceParameters) FromParamsRq() *CStoreRq {
	return &CStoreRq{
		AffectedSOPClassUID:                   p.AffectedSOPClassUID,
		MessageID:                             p.MessageID,
		Priority:                              p.Priority,
		CommandDataSetType:                    CommandDataSetTypeNonNull,
		AffectedSOPInstanceUID:                p.AffectedSOPInstanceUID,
		MoveOriginatorApplicationEntityTitle:  p.MoveOriginatorApplicationEntityTitle,
		MoveOriginatorMessageID:               p.MoveOriginatorMessageID,
	}
}

func (p CStoreServiceParameters) FromParamsRsp() *CStoreRsp {
	return &CStoreRsp{
		AffectedSOPClassUID:       p.AffectedSOPClassUID,
		MessageIDBeingRespondedTo: p.MessageIDBeingRespondedTo,
		CommandDataSetType:        CommandDataSetTypeNull,
		AffectedSOPInstanceUID:    p.AffectedSOPInstanceUID,
		Status:                    p.Status,
	}
}

func (p *CStoreServiceParameters) ToParamsRq(v *CStoreRq) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageID = v.MessageID
	p.Priority = v.Priority
	p.AffectedSOPInstanceUID = v.AffectedSOPInstanceUID
	p.MoveOriginatorApplicationEntityTitle = v.MoveOriginatorApplicationEntityTitle
	p.MoveOriginatorMessageID = v.MoveOriginatorMessageID
}

func (p *CStoreServiceParameters) ToParamsRsp(v *CStoreRsp) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageIDBeingRespondedTo = v.MessageIDBeingRespondedTo
	p.AffectedSOPInstanceUID = v.AffectedSOPInstanceUID
	p.Status = v.Status
}

// CFindServiceParameters models a C-FIND exchange, including the repeated
// Pending responses preceding a final Success/Cancel/error response.
// P3.7 9.1.2.
type CFindServiceParameters struct {
	AffectedSOPClassUID       string
	MessageID                 MessageID
	MessageIDBeingRespondedTo MessageID
	Priority                  uint16
	Status                    Status
}

func (p CFindServiceParameters) FromParamsRq() *CFindRq {
	return &CFindRq{
		AffectedSOPClassUID: p.AffectedSOPClassUID,
		MessageID:           p.MessageID,
		Priority:            p.Priority,
		CommandDataSetType:  CommandDataSetTypeNonNull,
	}
}

// FromParamsRsp builds an intermediate (Pending) or final response. Callers
// set p.Status to StatusPending for every match and to a terminal status
// (Success/Cancel/error) for the last response, and must call
// SetNoIdentifier on the returned message themselves when no identifier
// data set follows (the final, non-Pending case).
func (p CFindServiceParameters) FromParamsRsp() *CFindRsp {
	return &CFindRsp{
		AffectedSOPClassUID:       p.AffectedSOPClassUID,
		MessageIDBeingRespondedTo: p.MessageIDBeingRespondedTo,
		CommandDataSetType:        CommandDataSetTypeNonNull,
		Status:                    p.Status,
	}
}

func (p *CFindServiceParameters) ToParamsRq(v *CFindRq) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageID = v.MessageID
	p.Priority = v.Priority
}

func (p *CFindServiceParameters) ToParamsRsp(v *CFindRsp) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageIDBeingRespondedTo = v.MessageIDBeingRespondedTo
	p.Status = v.Status
}

// CGetServiceParameters models a C-GET exchange. P3.7 9.1.3.
type CGetServiceParameters struct {
	AffectedSOPClassUID            string
	MessageID                      MessageID
	MessageIDBeingRespondedTo      MessageID
	Priority                       uint16
	NumberOfRemainingSuboperations uint16
	NumberOfCompletedSuboperations uint16
	NumberOfFailedSuboperations    uint16
	NumberOfWarningSuboperations   uint16
	Status                         Status
}

func (p CGetServiceParameters) FromParamsRq() *CGetRq {
	return &CGetRq{
		AffectedSOPClassUID: p.AffectedSOPClassUID,
		MessageID:           p.MessageID,
		Priority:            p.Priority,
		CommandDataSetType:  CommandDataSetTypeNonNull,
	}
}

func (p CGetServiceParameters) FromParamsRsp() *CGetRsp {
	return &CGetRsp{
		AffectedSOPClassUID:             p.AffectedSOPClassUID,
		MessageIDBeingRespondedTo:       p.MessageIDBeingRespondedTo,
		CommandDataSetType:              CommandDataSetTypeNull,
		NumberOfRemainingSuboperations:  p.NumberOfRemainingSuboperations,
		NumberOfCompletedSuboperations:  p.NumberOfCompletedSuboperations,
		NumberOfFailedSuboperations:     p.NumberOfFailedSuboperations,
		NumberOfWarningSuboperations:    p.NumberOfWarningSuboperations,
		Status:                          p.Status,
	}
}

func (p *CGetServiceParameters) ToParamsRq(v *CGetRq) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageID = v.MessageID
	p.Priority = v.Priority
}

func (p *CGetServiceParameters) ToParamsRsp(v *CGetRsp) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageIDBeingRespondedTo = v.MessageIDBeingRespondedTo
	p.NumberOfRemainingSuboperations = v.NumberOfRemainingSuboperations
	p.NumberOfCompletedSuboperations = v.NumberOfCompletedSuboperations
	p.NumberOfFailedSuboperations = v.NumberOfFailedSuboperations
	p.NumberOfWarningSuboperations = v.NumberOfWarningSuboperations
	p.Status = v.Status
}

// CMoveServiceParameters models a C-MOVE exchange. P3.7 9.1.4.
type CMoveServiceParameters struct {
	AffectedSOPClassUID            string
	MessageID                      MessageID
	MessageIDBeingRespondedTo      MessageID
	Priority                       uint16
	MoveDestination                string
	NumberOfRemainingSuboperations uint16
	NumberOfCompletedSuboperations uint16
	NumberOfFailedSuboperations    uint16
	NumberOfWarningSuboperations   uint16
	Status                         Status
}

func (p CMoveServiceParameters) FromParamsRq() *CMoveRq {
	return &CMoveRq{
		AffectedSOPClassUID: p.AffectedSOPClassUID,
		MessageID:           p.MessageID,
		Priority:            p.Priority,
		MoveDestination:     p.MoveDestination,
		CommandDataSetType:  CommandDataSetTypeNonNull,
	}
}

func (p CMoveServiceParameters) FromParamsRsp() *CMoveRsp {
	return &CMoveRsp{
		AffectedSOPClassUID:             p.AffectedSOPClassUID,
		MessageIDBeingRespondedTo:       p.MessageIDBeingRespondedTo,
		CommandDataSetType:              CommandDataSetTypeNull,
		NumberOfRemainingSuboperations:  p.NumberOfRemainingSuboperations,
		NumberOfCompletedSuboperations:  p.NumberOfCompletedSuboperations,
		NumberOfFailedSuboperations:     p.NumberOfFailedSuboperations,
		NumberOfWarningSuboperations:    p.NumberOfWarningSuboperations,
		Status:                          p.Status,
	}
}

func (p *CMoveServiceParameters) ToParamsRq(v *CMoveRq) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageID = v.MessageID
	p.Priority = v.Priority
	p.MoveDestination = v.MoveDestination
}

func (p *CMoveServiceParameters) ToParamsRsp(v *CMoveRsp) {
	p.AffectedSOPClassUID = v.AffectedSOPClassUID
	p.MessageIDBeingRespondedTo = v.MessageIDBeingRespondedTo
	p.NumberOfRemainingSuboperations = v.NumberOfRemainingSuboperations
	p.NumberOfCompletedSuboperations = v.NumberOfCompletedSuboperations
	p.NumberOfFailedSuboperations = v.NumberOfFailedSuboperations
	p.NumberOfWarningSuboperations = v.NumberOfWarningSuboperations
	p.Status = v.Status
}

// CCancelServiceParameters models a C-CANCEL request. P3.7 9.1.5.
type CCancelServiceParameters struct {
	MessageIDBeingCancelled MessageID
}

func (p CCancelServiceParameters) FromParamsRq() *CCancelRq {
	return &CCancelRq{MessageIDBeingCancelled: p.MessageIDBeingCancelled}
}

func (p *CCancelServiceParameters) ToParamsRq(v *CCancelRq) {
	p.MessageIDBeingCancelled = v.MessageIDBeingCancelled
}
