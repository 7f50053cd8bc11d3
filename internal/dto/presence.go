package dto

// PresenceRequest optionally carries client-reported network evidence.
type PresenceRequest struct {
	NetworkEvidence *string `json:"networkEvidence"`
}

// PresenceResponse tells the client whether it appears to be in the office.
type PresenceResponse struct {
	OnOfficeNetwork bool   `json:"onOfficeNetwork"`
	ObservedAddress string `json:"observedAddress"`
}
